package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"breezy.app/internal/mocks"
	"breezy.app/pkg/errors"
)

func newTestUseCase(t *testing.T, configured, fallback string) (*UseCase, *mocks.CredentialStore) {
	store := mocks.NewCredentialStore(t)
	uc, err := NewUseCase(UseCaseDependencies{
		Store:         store,
		ConfiguredKey: configured,
		DefaultKey:    fallback,
		Logger:        mocks.NewPermissiveLogger(t),
	})
	require.NoError(t, err)
	return uc, store
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{Logger: mocks.NewLogger(t)})
	assert.True(t, errors.IsValidationError(err))

	_, err = NewUseCase(UseCaseDependencies{Store: mocks.NewCredentialStore(t)})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_ResolveAPIKey(t *testing.T) {
	ctx := context.Background()

	t.Run("configured_key_wins", func(t *testing.T) {
		uc, _ := newTestUseCase(t, " env-key ", "default-key")

		key, source, err := uc.ResolveAPIKey(ctx)

		require.NoError(t, err)
		assert.Equal(t, "env-key", key)
		assert.Equal(t, SourceConfigured, source)
	})

	t.Run("stored_key", func(t *testing.T) {
		uc, store := newTestUseCase(t, "", "default-key")
		store.EXPECT().GetAPIKey(mock.Anything).Return("stored-key", nil)

		key, source, err := uc.ResolveAPIKey(ctx)

		require.NoError(t, err)
		assert.Equal(t, "stored-key", key)
		assert.Equal(t, SourceStored, source)
	})

	t.Run("default_key_is_stored_on_first_start", func(t *testing.T) {
		uc, store := newTestUseCase(t, "", "default-key")
		store.EXPECT().GetAPIKey(mock.Anything).Return("", errors.NewNotFoundError("no API key stored"))
		store.EXPECT().SaveAPIKey(mock.Anything, "default-key").Return(nil).Once()

		key, source, err := uc.ResolveAPIKey(ctx)

		require.NoError(t, err)
		assert.Equal(t, "default-key", key)
		assert.Equal(t, SourceDefault, source)
	})

	t.Run("nothing_available", func(t *testing.T) {
		uc, store := newTestUseCase(t, "", "")
		store.EXPECT().GetAPIKey(mock.Anything).Return("", errors.NewNotFoundError("no API key stored"))

		_, _, err := uc.ResolveAPIKey(ctx)

		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("store_failure", func(t *testing.T) {
		uc, store := newTestUseCase(t, "", "default-key")
		store.EXPECT().GetAPIKey(mock.Anything).Return("", errors.NewDatabaseError("disk gone", nil))

		_, _, err := uc.ResolveAPIKey(ctx)

		assert.True(t, errors.IsDatabaseError(err))
	})

	t.Run("saving_default_fails", func(t *testing.T) {
		uc, store := newTestUseCase(t, "", "default-key")
		store.EXPECT().GetAPIKey(mock.Anything).Return("", errors.NewNotFoundError("no API key stored"))
		store.EXPECT().SaveAPIKey(mock.Anything, "default-key").Return(errors.NewDatabaseError("read-only", nil))

		_, _, err := uc.ResolveAPIKey(ctx)

		assert.True(t, errors.IsDatabaseError(err))
	})
}

func TestUseCase_UpdateAPIKey(t *testing.T) {
	uc, store := newTestUseCase(t, "", "")
	store.EXPECT().SaveAPIKey(mock.Anything, "new-key").Return(nil).Once()

	require.NoError(t, uc.UpdateAPIKey(context.Background(), " new-key "))
	assert.True(t, errors.IsValidationError(uc.UpdateAPIKey(context.Background(), "  ")))
}
