package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finman-cli/finman/internal/errs"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(NewMemoryUserStore())

	u, err := svc.Register("ivan", "1234")
	require.NoError(t, err)
	assert.Equal(t, "ivan", u.Login)

	u, err = svc.Login("ivan", "1234")
	require.NoError(t, err)
	assert.Equal(t, "ivan", u.Login)
}

func TestRegister_TrimsInput(t *testing.T) {
	svc := NewService(NewMemoryUserStore())

	u, err := svc.Register("  ivan  ", " 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "ivan", u.Login)

	_, err = svc.Login("ivan", "1234")
	require.NoError(t, err)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(NewMemoryUserStore())

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{"empty login", "", "pw"},
		{"blank login", "   ", "pw"},
		{"login with space", "iv an", "pw"},
		{"login with slash", "a/b", "pw"},
		{"login with backslash", `a\b`, "pw"},
		{"login escaping the data dir", "../escape", "pw"},
		{"empty password", "ivan", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.login, tt.password)
			require.Error(t, err)
			assert.True(t, errs.IsKind(err, errs.KindEmptyField))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	svc := NewService(NewMemoryUserStore())

	_, err := svc.Register("ivan", "1234")
	require.NoError(t, err)

	_, err = svc.Register("ivan", "other")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindDuplicateAccount))
}

func TestLogin_Failures(t *testing.T) {
	svc := NewService(NewMemoryUserStore())
	_, err := svc.Register("ivan", "1234")
	require.NoError(t, err)

	_, err = svc.Login("nobody", "1234")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindAuthFailed))

	_, err = svc.Login("ivan", "wrong")
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindAuthFailed))
}

func TestFileUserStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileUserStore(dir)

	require.NoError(t, store.Save(User{Login: "ivan", Password: "1234"}))
	require.NoError(t, store.Save(User{Login: "maria", Password: "abcd"}))

	// A second store instance reads the same file.
	again := NewFileUserStore(dir)
	u, err := again.Find("ivan")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "1234", u.Password)

	exists, err := again.Exists("maria")
	require.NoError(t, err)
	assert.True(t, exists)

	missing, err := again.Find("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionLifecycle(t *testing.T) {
	dir := t.TempDir()

	login, err := CurrentLogin(dir)
	require.NoError(t, err)
	assert.Empty(t, login)

	_, err = RequireLogin(dir)
	require.Error(t, err)
	assert.True(t, errs.IsKind(err, errs.KindAuthFailed))

	require.NoError(t, SaveSession(dir, "ivan"))
	login, err = RequireLogin(dir)
	require.NoError(t, err)
	assert.Equal(t, "ivan", login)

	require.NoError(t, ClearSession(dir))
	login, err = CurrentLogin(dir)
	require.NoError(t, err)
	assert.Empty(t, login)

	// Clearing twice is fine.
	require.NoError(t, ClearSession(dir))
}
