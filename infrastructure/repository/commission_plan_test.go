package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeactivateClientPlansSQL(t *testing.T) {
	query, args, err := deactivateClientPlansSQL("CLI001")

	assert.NoError(t, err)
	assert.Contains(t, query, "UPDATE commission_plans")
	assert.Contains(t, query, "SET is_active = $1")
	assert.Contains(t, query, "client_id = $3")
	assert.Contains(t, query, "is_active = $4")
	assert.Len(t, args, 4)
	assert.Equal(t, false, args[0])
	assert.Equal(t, "CLI001", args[2])
	assert.Equal(t, true, args[3])
}

func TestDeactivateSiblingPlansSQL(t *testing.T) {
	query, args, err := deactivateSiblingPlansSQL("PLN001")

	assert.NoError(t, err)
	assert.Contains(t, query, "UPDATE commission_plans")
	assert.Contains(t, query, "SET is_active = $1")
	// Resolve o cliente pelo próprio plano e preserva o plano que está sendo ativado
	assert.Contains(t, query, "(SELECT client_id FROM commission_plans WHERE id = $3)")
	assert.Contains(t, query, "id <> $4")
	assert.Contains(t, query, "is_active = $5")
	assert.Len(t, args, 5)
	assert.Equal(t, false, args[0])
	assert.Equal(t, "PLN001", args[2])
	assert.Equal(t, "PLN001", args[3])
	assert.Equal(t, true, args[4])
}
