package tokencache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Normalize(t *testing.T) {
	assert.Equal(t, NewKey("reports"), Key{Scope: "reports"}.normalize())
	custom := Key{Namespace: "prod", Scope: "reports", Subject: "alice"}
	assert.Equal(t, custom, custom.normalize())
}

func TestKey_Validate(t *testing.T) {
	assert.NoError(t, NewKey("reports").Validate())
	assert.Equal(t, ErrEmptyScope, Key{Namespace: "prod"}.Validate())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "default/reports", NewKey("reports").String())
	assert.Equal(t, "prod/reports@alice", Key{Namespace: "prod", Scope: "reports", Subject: "alice"}.String())
}
