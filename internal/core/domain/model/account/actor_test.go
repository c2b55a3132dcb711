package account_test

import (
	"testing"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates actor with flags", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := account.NewActor(id, true, false)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.True(t, actor.IsStaff())
		assert.False(t, actor.IsMerchant())
		assert.NoError(t, actor.Validate())
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := account.NewActor(kernel.UUID{}, false, false)
		require.Error(t, err)
	})
}

func TestActor_Validate(t *testing.T) {
	var actor account.Actor
	assert.ErrorIs(t, actor.Validate(), account.ErrActorIsNotConstructed)
}

func TestActor_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	a, err := account.NewActor(id, false, false)
	require.NoError(t, err)
	b, err := account.NewActor(id, false, true)
	require.NoError(t, err)
	c, err := account.NewActor(kernel.NewUUID(), false, false)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b), "same user id matches regardless of flags")
	assert.False(t, a.IsEqual(c))
}
