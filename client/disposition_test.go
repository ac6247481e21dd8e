package client

import "testing"

func TestFileNameFromDisposition(t *testing.T) {
	cases := []struct {
		name        string
		disposition string
		want        string
	}{
		{
			name:        "plain quoted",
			disposition: `attachment; filename="report.pdf"`,
			want:        "report.pdf",
		},
		{
			name:        "plain unquoted",
			disposition: `attachment; filename=payslip.pdf`,
			want:        "payslip.pdf",
		},
		{
			name:        "extended utf8",
			disposition: `attachment; filename*=UTF-8''r%C3%A9sum%C3%A9.pdf`,
			want:        "résumé.pdf",
		},
		{
			name:        "extended quoted",
			disposition: `attachment; filename*="UTF-8''r%C3%A9sum%C3%A9.pdf"`,
			want:        "résumé.pdf",
		},
		{
			name:        "extended wins over plain",
			disposition: `attachment; filename="fallback.pdf"; filename*=UTF-8''r%C3%A9sum%C3%A9.pdf`,
			want:        "résumé.pdf",
		},
		{
			name:        "plain with trailing parameter",
			disposition: `attachment; filename="summary.pdf"; size=1234`,
			want:        "summary.pdf",
		},
		{
			name:        "empty header",
			disposition: "",
			want:        "",
		},
		{
			name:        "no filename parameter",
			disposition: "inline",
			want:        "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fileNameFromDisposition(tc.disposition); got != tc.want {
				t.Fatalf("fileNameFromDisposition(%q) = %q, want %q", tc.disposition, got, tc.want)
			}
		})
	}
}
