package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticNode presents a fixed current value to the transaction function.
type staticNode struct {
	value interface{}
}

func (n staticNode) Unmarshal(v interface{}) error {
	raw, err := json.Marshal(n.value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func TestCreateIfAbsentFnWritesWhenAbsent(t *testing.T) {
	created := false
	fn := createIfAbsentFn(map[string]interface{}{"email": "alice@example.com"}, &created)

	result, err := fn(staticNode{value: nil})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, map[string]interface{}{"email": "alice@example.com"}, result)
}

func TestCreateIfAbsentFnKeepsExistingRecord(t *testing.T) {
	existing := map[string]interface{}{"email": "alice@example.com", "displayName": "Alice"}
	created := true
	fn := createIfAbsentFn(map[string]interface{}{"email": "intruder@example.com"}, &created)

	result, err := fn(staticNode{value: existing})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing, result)
}
