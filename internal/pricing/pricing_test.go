package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		roleName    string
		jobLocation string
		minCTC      int
		maxCTC      int
		want        int
	}{
		{
			name:        "typical posting",
			roleName:    "Engineer", // 8
			jobLocation: "Remote",   // 6
			minCTC:      500000,     // 6 digits
			maxCTC:      900000,     // 6 digits
			want:        26,
		},
		{
			name:        "short strings small numbers",
			roleName:    "QA",    // 2
			jobLocation: "Pune",  // 4
			minCTC:      1,       // 1 digit
			maxCTC:      9,       // 1 digit
			want:        8,
		},
		{
			name:        "zero salary bounds still count one digit each",
			roleName:    "Intern", // 6
			jobLocation: "Delhi",  // 5
			minCTC:      0,
			maxCTC:      0,
			want:        13,
		},
		{
			name:        "length counts bytes not runes",
			roleName:    "Développeur", // 12 bytes
			jobLocation: "Lyon",        // 4
			minCTC:      40000,         // 5 digits
			maxCTC:      60000,         // 5 digits
			want:        26,
		},
		{
			name:        "empty strings",
			roleName:    "",
			jobLocation: "",
			minCTC:      100,
			maxCTC:      1000,
			want:        7,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RequiredAmount(tt.roleName, tt.jobLocation, tt.minCTC, tt.maxCTC)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredAmount_Deterministic(t *testing.T) {
	t.Parallel()

	// The same stored fields must price identically at posting time and at
	// application time.
	first := RequiredAmount("Backend Developer", "Bangalore", 800000, 1500000)
	second := RequiredAmount("Backend Developer", "Bangalore", 800000, 1500000)
	assert.Equal(t, first, second)
	assert.Equal(t, 17+9+6+7, first)
}
