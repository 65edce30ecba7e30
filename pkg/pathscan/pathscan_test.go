package pathscan

import (
	"reflect"
	"testing"
)

func TestScanPath(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		commands   int
		curves     int
		numbers    []float64
	}{
		{
			name:     "empty data",
			data:     "",
			commands: 0,
			curves:   0,
		},
		{
			name:     "simple polyline",
			data:     "M0,0 L10,0 L10,10",
			commands: 3,
			curves:   0,
			numbers:  []float64{0, 0, 10, 0, 10, 10},
		},
		{
			name:     "relative commands count the same",
			data:     "m5,5 l1,1 z",
			commands: 3,
			curves:   0,
			numbers:  []float64{5, 5, 1, 1},
		},
		{
			name:     "cubic and arc are curve commands",
			data:     "M0,0 C1,1 2,2 3,3 A5,5 0 0 1 10,10 Z",
			commands: 4,
			curves:   2,
			numbers:  []float64{0, 0, 1, 1, 2, 2, 3, 3, 5, 5, 0, 0, 1, 10, 10},
		},
		{
			name:     "negative and decimal literals",
			data:     "M-1.5,2.25 L-3,0.5",
			commands: 2,
			curves:   0,
			numbers:  []float64{-1.5, 2.25, -3, 0.5},
		},
		{
			name:     "scientific notation splits into two tokens",
			data:     "M1e-5,0",
			commands: 1,
			curves:   0,
			numbers:  []float64{1, -5, 0},
		},
		{
			name:     "garbage yields empty streams",
			data:     "### ;; ??",
			commands: 0,
			curves:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScanPath(tt.data)
			if got := len(s.Commands); got != tt.commands {
				t.Errorf("commands = %d, want %d", got, tt.commands)
			}
			if got := len(s.CurveCommands); got != tt.curves {
				t.Errorf("curve commands = %d, want %d", got, tt.curves)
			}
			if !reflect.DeepEqual(s.Numbers, tt.numbers) {
				t.Errorf("numbers = %v, want %v", s.Numbers, tt.numbers)
			}
			if len(s.CurveCommands) > len(s.Commands) {
				t.Errorf("curve commands (%d) exceed commands (%d)", len(s.CurveCommands), len(s.Commands))
			}
		})
	}
}

func TestDecimalDigitCounts(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []int
	}{
		{name: "no decimals", data: "M1,2 L30,40", want: nil},
		{name: "mixed precision", data: "M0.12,3.4 L5,0.789", want: []int{2, 1, 3}},
		{name: "negative decimal", data: "M-1.50,0", want: []int{2}},
		{name: "empty", data: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecimalDigitCounts(tt.data); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecimalDigitCounts(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
