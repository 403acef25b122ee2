package gfa

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dt      Datatype
		raw     string
		version Version
		wantErr bool
	}{
		{"gfa1 segment name ok", DatatypeSegmentName, "s1", GFA1, false},
		{"gfa1 segment name rejects whitespace", DatatypeSegmentName, "bad name", GFA1, true},
		{"gfa2 segment name allows punctuation", DatatypeSegmentName, "seg.1", GFA2, false},
		{"integer ok", DatatypeInteger, "-42", GFA1, false},
		{"integer rejects float", DatatypeInteger, "4.2", GFA1, true},
		{"float ok", DatatypeFloat, "3.14e10", GFA1, false},
		{"orientation plus", DatatypeOrientation, "+", GFA1, false},
		{"orientation invalid", DatatypeOrientation, "x", GFA1, true},
		{"cigar ok", DatatypeCIGAR, "10M2I3M", GFA1, false},
		{"cigar star placeholder", DatatypeCIGAR, "*", GFA1, false},
		{"byte array ok", DatatypeByteArray, "1A2F", GFA1, false},
		{"byte array rejects odd length", DatatypeByteArray, "1A2", GFA1, true},
		{"numeric array ok", DatatypeNumericArray, "i,1,2,3", GFA1, false},
		{"position ok", DatatypePosition, "120$", GFA1, false},
		{"optional identifier placeholder ok", DatatypeOptionalIdentifierGFA2, "*", GFA2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.dt, tt.raw, tt.version)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%s, %q) error = %v, wantErr %v", tt.dt, tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dt   Datatype
		raw  string
	}{
		{"integer", DatatypeInteger, "17"},
		{"float", DatatypeFloat, "2.5"},
		{"orientation", DatatypeOrientation, "-"},
		{"cigar", DatatypeCIGAR, "8M"},
		{"string", DatatypeString, "hello world"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decode(tt.dt, tt.raw, GFA1)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			out, err := Encode(tt.dt, v)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if out != tt.raw {
				t.Errorf("round trip = %q, want %q", out, tt.raw)
			}
		})
	}
}
