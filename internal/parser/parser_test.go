package parser

import (
	"reflect"
	"testing"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		in      string
		want    Ref
		wantErr bool
	}{
		{in: "@color/brand", want: Ref{Name: "brand"}},
		{in: " @COLOR/Brand_2 ", want: Ref{Name: "brand_2"}},
		{in: "@12", want: Ref{ID: 12}},
		{in: "@0", wantErr: true},
		{in: "@color/2fast", wantErr: true},
		{in: "#112233", wantErr: true},
		{in: "brand", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRef(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRef(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseRef(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if IsValidRef(tt.in) == tt.wantErr {
				t.Fatalf("IsValidRef(%q) disagrees with ParseRef", tt.in)
			}
		})
	}
}

func TestNormalizeRef(t *testing.T) {
	got, err := NormalizeRef("@Color/Brand")
	if err != nil || got != "@color/brand" {
		t.Fatalf("NormalizeRef() = %q, %v", got, err)
	}
	if got, _ := NormalizeRef("@7"); got != "@7" {
		t.Fatalf("NormalizeRef(@7) = %q", got)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "Brand", want: "brand"},
		{in: " warning_2 ", want: "warning_2"},
		{in: "2fast", wantErr: true},
		{in: "with space", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeName(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeName(%q) err = %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValues map[string]string
		wantText   string
		wantErrs   int
	}{
		{
			name:       "text and attributes",
			input:      "Hello world textColor=@Color/Brand background=@3",
			wantValues: map[string]string{"textColor": "@color/brand", "background": "@3"},
			wantText:   "Hello world",
		},
		{
			name:       "no attributes",
			input:      "  just   text ",
			wantValues: map[string]string{},
			wantText:   "just text",
		},
		{
			name:       "invalid reference",
			input:      "textColor=#FF0000",
			wantValues: map[string]string{},
			wantErrs:   1,
		},
		{
			name:       "duplicate attribute",
			input:      "textColor=@1 textColor=@2",
			wantValues: map[string]string{"textColor": "@1"},
			wantErrs:   1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAttributes(tt.input)
			if !reflect.DeepEqual(got.Values, tt.wantValues) {
				t.Errorf("Values = %v, want %v", got.Values, tt.wantValues)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
			if len(got.Errors) != tt.wantErrs {
				t.Errorf("Errors = %v, want %d", got.Errors, tt.wantErrs)
			}
		})
	}
}

func TestParsedAttributesNames(t *testing.T) {
	got := ParseAttributes("textColorHint=@2 background=@1").Names()
	if want := []string{"background", "textColorHint"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
