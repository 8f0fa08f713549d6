package touchscreen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a CoffeeMachine that remembers which buttons were pressed.
type recorder struct {
	calls []string
}

func (r *recorder) ChooseFirstSelection()  { r.calls = append(r.calls, "first") }
func (r *recorder) ChooseSecondSelection() { r.calls = append(r.calls, "second") }

func TestParseSelection(t *testing.T) {
	tests := []struct {
		in      string
		want    Selection
		wantErr bool
	}{
		{"first", First, false},
		{" FIRST ", First, false},
		{"1", First, false},
		{"a", First, false},
		{"second", Second, false},
		{"2", Second, false},
		{"B", Second, false},
		{"third", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelection(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelections_StopsAtFirstError(t *testing.T) {
	_, err := ParseSelections([]string{"1", "espresso", "2"})
	require.ErrorIs(t, err, ErrUnknownSelection)
	assert.Contains(t, err.Error(), "espresso")
}

func TestPressAll_Order(t *testing.T) {
	r := &recorder{}
	require.NoError(t, PressAll(r, []Selection{Second, First, First}))

	want := []string{"second", "first", "first"}
	if diff := cmp.Diff(want, r.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPressAll_InvalidPressesNothing(t *testing.T) {
	r := &recorder{}
	err := PressAll(r, []Selection{First, Selection(9)})
	require.ErrorIs(t, err, ErrUnknownSelection)
	assert.Empty(t, r.calls)
}

func TestSelection_Labels(t *testing.T) {
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "SelectB", Second.LegacyButton())
	assert.Equal(t, "2", Second.Key())
	assert.Equal(t, "selection(7)", Selection(7).String())
}
