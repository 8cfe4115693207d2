package adapter

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestPersistentJar_SeedsFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCookieStore(ctrl)
	base := mustURL(t, "http://notes.local:1337")

	store.EXPECT().
		LoadCookies(gomock.Any(), "notes.local").
		Return([]*http.Cookie{{Name: "INSTANCE", Value: "i-9", Path: "/"}}, nil)

	jar, err := newPersistentJar(context.Background(), base, store, logger.Nop())
	require.NoError(t, err)

	cookies := jar.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, "i-9", cookies[0].Value)
}

func TestPersistentJar_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCookieStore(ctrl)

	store.EXPECT().LoadCookies(gomock.Any(), "notes.local").Return(nil, errors.New("disk gone"))

	_, err := newPersistentJar(context.Background(), mustURL(t, "http://notes.local"), store, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load stored cookies")
}

func TestPersistentJar_SavesOnlyOwnHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockCookieStore(ctrl)
	base := mustURL(t, "http://notes.local")

	store.EXPECT().LoadCookies(gomock.Any(), "notes.local").Return(nil, nil)
	store.EXPECT().
		SaveCookies(gomock.Any(), "notes.local", gomock.Len(1)).
		Return(nil).
		Times(1)

	jar, err := newPersistentJar(context.Background(), base, store, logger.Nop())
	require.NoError(t, err)

	jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: "s"}})
	jar.SetCookies(mustURL(t, "http://elsewhere.local"), []*http.Cookie{{Name: "x", Value: "y"}})
	jar.SetCookies(base, nil)
}

func TestPersistentJar_SaveErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCookieRepository(ctrl)
	base := mustURL(t, "http://notes.local")

	// the SQLite repository plugs in as the jar's store
	repo.EXPECT().LoadCookies(gomock.Any(), "notes.local").Return(nil, nil)
	repo.EXPECT().SaveCookies(gomock.Any(), "notes.local", gomock.Any()).Return(errors.New("locked"))

	jar, err := newPersistentJar(context.Background(), base, repo, logger.Nop())
	require.NoError(t, err)

	jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: "s"}})

	cookies := jar.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, "s", cookies[0].Value)
}

func TestPersistentJar_SaveCarriesLogger(t *testing.T) {
	var buf bytes.Buffer
	ctrl := gomock.NewController(t)
	store := mock.NewMockCookieStore(ctrl)
	base := mustURL(t, "http://notes.local")

	store.EXPECT().LoadCookies(gomock.Any(), "notes.local").Return(nil, nil)
	store.EXPECT().
		SaveCookies(gomock.Any(), "notes.local", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ []*http.Cookie) error {
			logger.FromContext(ctx).Info().Msg("saving cookies")
			return nil
		})

	jar, err := newPersistentJar(context.Background(), base, store, logger.NewLogger("test", &buf))
	require.NoError(t, err)

	jar.SetCookies(base, []*http.Cookie{{Name: "session", Value: "s"}})

	assert.Contains(t, buf.String(), "saving cookies")
}
