package vcf

import (
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "v4.1", input: "VCFv4.1", want: V41},
		{name: "v4.2", input: "VCFv4.2", want: V42},
		{name: "v4.3", input: "VCFv4.3", want: V43},
		{name: "bare number", input: "4.2", wantErr: true},
		{name: "lowercase", input: "vcfv4.2", wantErr: true},
		{name: "unsupported", input: "VCFv4.4", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	if got := V43.String(); got != "VCFv4.3" {
		t.Errorf("V43.String() = %q, want %q", got, "VCFv4.3")
	}
	if got := VersionUnknown.String(); got != "unknown" {
		t.Errorf("VersionUnknown.String() = %q, want %q", got, "unknown")
	}
}

func TestInputFormatHas(t *testing.T) {
	f := FormatText | FormatBGZF
	if !f.Has(FormatText) {
		t.Error("expected FormatText to be set")
	}
	if !f.Has(FormatBGZF) {
		t.Error("expected FormatBGZF to be set")
	}
	if f.Has(FormatGzip) {
		t.Error("did not expect FormatGzip to be set")
	}
	if f.Has(FormatText | FormatGzip) {
		t.Error("Has should require all flags")
	}
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		ploidy  Ploidy
		samples []string
		wantErr bool
	}{
		{
			name:    "valid",
			version: V41,
			ploidy:  2,
			samples: []string{"Sample1", "Sample2", "Sample3"},
		},
		{
			name:    "no samples",
			version: V43,
			ploidy:  2,
			samples: nil,
		},
		{
			name:    "unknown version",
			version: VersionUnknown,
			ploidy:  2,
			wantErr: true,
		},
		{
			name:    "zero ploidy",
			version: V42,
			ploidy:  0,
			wantErr: true,
		},
		{
			name:    "duplicate sample",
			version: V42,
			ploidy:  2,
			samples: []string{"Sample1", "Sample1"},
			wantErr: true,
		},
		{
			name:    "empty sample name",
			version: V42,
			ploidy:  2,
			samples: []string{"Sample1", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := NewSource("example.vcf", FormatText, tt.version, tt.ploidy, tt.samples)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSource() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(src.Samples) != len(tt.samples) {
				t.Errorf("Samples = %v, want %v", src.Samples, tt.samples)
			}
		})
	}
}

func TestSourceSampleLookup(t *testing.T) {
	src, err := NewSource("example.vcf", FormatText|FormatGzip, V42, 2, []string{"NA0001", "NA0002"})
	if err != nil {
		t.Fatalf("NewSource() failed: %v", err)
	}

	if !src.HasSample("NA0002") {
		t.Error("expected NA0002 to be declared")
	}
	if src.HasSample("NA0003") {
		t.Error("did not expect NA0003 to be declared")
	}
	if got := src.SampleIndex("NA0002"); got != 1 {
		t.Errorf("SampleIndex(NA0002) = %d, want 1", got)
	}
	if got := src.SampleIndex("NA0003"); got != -1 {
		t.Errorf("SampleIndex(NA0003) = %d, want -1", got)
	}
}

func TestSourceSamplesCopied(t *testing.T) {
	in := []string{"Sample1", "Sample2"}
	src, err := NewSource("example.vcf", FormatText, V41, 2, in)
	if err != nil {
		t.Fatalf("NewSource() failed: %v", err)
	}

	in[0] = "mutated"
	if src.Samples[0] != "Sample1" {
		t.Error("Source must copy the sample list at construction")
	}
}

func TestSourceFormatString(t *testing.T) {
	src, err := NewSource("example.vcf.gz", FormatText|FormatGzip|FormatBGZF, V43, 2, nil)
	if err != nil {
		t.Fatalf("NewSource() failed: %v", err)
	}
	if got := src.FormatString(); got != "text+gzip+bgzf" {
		t.Errorf("FormatString() = %q, want %q", got, "text+gzip+bgzf")
	}
}
