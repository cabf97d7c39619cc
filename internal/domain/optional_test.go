package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshalJSON(t *testing.T) {
	type payload struct {
		Name Optional[string]  `json:"name"`
		Age  Optional[float64] `json:"age"`
	}

	tests := []struct {
		name     string
		body     string
		wantName Optional[string]
		wantAge  Optional[float64]
		wantErr  bool
	}{
		{
			name:     "both present",
			body:     `{"name":"Ann","age":30}`,
			wantName: Some("Ann"),
			wantAge:  Some(30.0),
		},
		{
			name:     "zero age is present",
			body:     `{"age":0}`,
			wantName: Optional[string]{},
			wantAge:  Some(0.0),
		},
		{
			name:     "empty string is present",
			body:     `{"name":""}`,
			wantName: Some(""),
			wantAge:  Optional[float64]{},
		},
		{
			name:     "explicit null is absent",
			body:     `{"name":null,"age":null}`,
			wantName: Optional[string]{},
			wantAge:  Optional[float64]{},
		},
		{
			name:     "omitted keys are absent",
			body:     `{}`,
			wantName: Optional[string]{},
			wantAge:  Optional[float64]{},
		},
		{
			name:    "wrong type",
			body:    `{"age":"thirty"}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			err := json.Unmarshal([]byte(tc.body), &p)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, p.Name)
			assert.Equal(t, tc.wantAge, p.Age)
		})
	}
}

func TestOptionalMarshalJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		Name Optional[string]  `json:"name"`
		Age  Optional[float64] `json:"age"`
	}{Age: Some(31.0)})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"age":31}`, string(out))
}

func TestOptionalPtr(t *testing.T) {
	assert.Nil(t, Optional[string]{}.Ptr())

	p := Some(0.0).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 0.0, *p)
}
