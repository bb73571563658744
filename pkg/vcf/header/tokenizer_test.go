package header

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"helix-hq/ganymede/pkg/vcf/meta"
)

func TestTokenizeMeta(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *MetaLine
		wantErr bool
	}{
		{
			name: "no value",
			text: "##reference",
			want: &MetaLine{Number: 1, Key: "reference", Shape: meta.NoValue},
		},
		{
			name: "plain value",
			text: "##assembly=GRCh37",
			want: &MetaLine{Number: 1, Key: "assembly", Shape: meta.PlainValue, Plain: "GRCh37"},
		},
		{
			name: "plain value keeps equals signs",
			text: "##cmdline=bcftools view -i 'DP=10'",
			want: &MetaLine{Number: 1, Key: "cmdline", Shape: meta.PlainValue, Plain: "bcftools view -i 'DP=10'"},
		},
		{
			name: "key-value single pair",
			text: "##contig=<ID=contig_1>",
			want: &MetaLine{Number: 1, Key: "contig", Shape: meta.KeyValue, Pairs: []meta.Pair{{Key: "ID", Value: "contig_1"}}},
		},
		{
			name: "key-value multiple pairs",
			text: "##INFO=<ID=DP,Number=1,Type=Integer,Description=depth>",
			want: &MetaLine{Number: 1, Key: "INFO", Shape: meta.KeyValue, Pairs: []meta.Pair{
				{Key: "ID", Value: "DP"},
				{Key: "Number", Value: "1"},
				{Key: "Type", Value: "Integer"},
				{Key: "Description", Value: "depth"},
			}},
		},
		{
			name: "quoted value with comma and equals",
			text: `##FILTER=<ID=q10,Description="Quality < 10, or DP=0">`,
			want: &MetaLine{Number: 1, Key: "FILTER", Shape: meta.KeyValue, Pairs: []meta.Pair{
				{Key: "ID", Value: "q10"},
				{Key: "Description", Value: "Quality < 10, or DP=0"},
			}},
		},
		{
			name: "escaped quote inside quoted value",
			text: `##FILTER=<ID=f,Description="a \"quoted\" word">`,
			want: &MetaLine{Number: 1, Key: "FILTER", Shape: meta.KeyValue, Pairs: []meta.Pair{
				{Key: "ID", Value: "f"},
				{Key: "Description", Value: `a "quoted" word`},
			}},
		},
		{
			name: "empty quoted value",
			text: `##FILTER=<ID=f,Description="">`,
			want: &MetaLine{Number: 1, Key: "FILTER", Shape: meta.KeyValue, Pairs: []meta.Pair{
				{Key: "ID", Value: "f"},
				{Key: "Description", Value: ""},
			}},
		},
		{name: "missing ## prefix", text: "#INFO=<ID=DP>", wantErr: true},
		{name: "empty key", text: "##=value", wantErr: true},
		{name: "unterminated payload", text: "##INFO=<ID=DP", wantErr: true},
		{name: "unterminated quote", text: `##FILTER=<ID=f,Description="open>`, wantErr: true},
		{name: "pair without equals", text: "##INFO=<ID>", wantErr: true},
		{name: "empty pair key", text: "##INFO=<=DP>", wantErr: true},
		{name: "trailing comma", text: "##INFO=<ID=DP,>", wantErr: true},
		{name: "empty payload", text: "##INFO=<>", wantErr: true},
		{name: "junk after quoted value", text: `##FILTER=<ID=f,Description="d"x>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TokenizeMeta(1, tt.text)
			if (err != nil) != tt.wantErr {
				t.Fatalf("TokenizeMeta(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("TokenizeMeta(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestMetaLineEntryRoundTrip(t *testing.T) {
	src := testSource(t)

	line, err := TokenizeMeta(3, `##INFO=<ID=DP,Number=1,Type=Integer,Description="Combined depth">`)
	if err != nil {
		t.Fatalf("TokenizeMeta() failed: %v", err)
	}

	entry, err := line.Entry(src)
	if err != nil {
		t.Fatalf("Entry() failed: %v", err)
	}
	if entry.Line() != 3 || entry.ID() != "INFO" {
		t.Errorf("entry = line %d key %q, want line 3 key INFO", entry.Line(), entry.ID())
	}
	if got, _ := entry.Get("Description"); got != "Combined depth" {
		t.Errorf("Get(Description) = %q, want %q", got, "Combined depth")
	}
}
