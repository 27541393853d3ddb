package follow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/auth"
	"github.com/sosmedia/api-sosmed/internal/user"
)

type fakeFollowRepo struct {
	created []Follow
	deleted []Follow
}

func (f *fakeFollowRepo) FirstOrCreate(db *gorm.DB, userID, followerID uuid.UUID) (*Follow, error) {
	for i := range f.created {
		if f.created[i].UserID == userID && f.created[i].FollowerID == followerID {
			return &f.created[i], nil
		}
	}
	row := Follow{ID: uuid.New(), UserID: userID, FollowerID: followerID}
	f.created = append(f.created, row)
	return &row, nil
}

func (f *fakeFollowRepo) Delete(db *gorm.DB, userID, followerID uuid.UUID) error {
	f.deleted = append(f.deleted, Follow{UserID: userID, FollowerID: followerID})
	return nil
}

func (f *fakeFollowRepo) ListFollowers(db *gorm.DB, userID uuid.UUID) ([]Follow, error) {
	var rows []Follow
	for _, row := range f.created {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeFollowRepo) ListFollowing(db *gorm.DB, followerID uuid.UUID) ([]Follow, error) {
	var rows []Follow
	for _, row := range f.created {
		if row.FollowerID == followerID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserRepo) Create(db *gorm.DB, u *user.User) error { return nil }

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) ListAll(db *gorm.DB) ([]user.User, error) { return nil, nil }

func (f *fakeUserRepo) UpdateUsername(db *gorm.DB, id uuid.UUID, username string) error { return nil }

func (f *fakeUserRepo) UsernameExists(db *gorm.DB, username string) (bool, error) { return false, nil }

func newTestHandler() (*Handler, *fakeFollowRepo, uuid.UUID, uuid.UUID) {
	me := uuid.New()
	target := uuid.New()

	follows := &fakeFollowRepo{}
	users := &fakeUserRepo{users: map[uuid.UUID]*user.User{
		me:     {ID: me, Name: "Alice"},
		target: {ID: target, Name: "Bob"},
	}}

	return &Handler{Repository: follows, Users: users}, follows, me, target
}

func do(h http.HandlerFunc, method, path string, me uuid.UUID, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req = mux.SetURLVars(req, vars)
	req = req.WithContext(auth.WithUserID(req.Context(), me))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestFollowCreatesRow(t *testing.T) {
	h, follows, me, target := newTestHandler()

	rec := do(h.Follow, http.MethodPost, "/follow/"+target.String(), me, map[string]string{"id": target.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, follows.created, 1)
	assert.Equal(t, target, follows.created[0].UserID)
	assert.Equal(t, me, follows.created[0].FollowerID)

	// Following twice stays a single row.
	rec = do(h.Follow, http.MethodPost, "/follow/"+target.String(), me, map[string]string{"id": target.String()})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, follows.created, 1)
}

func TestFollowSelfIsRejected(t *testing.T) {
	h, follows, me, _ := newTestHandler()

	rec := do(h.Follow, http.MethodPost, "/follow/"+me.String(), me, map[string]string{"id": me.String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, follows.created)
}

func TestFollowUnknownUserIs404(t *testing.T) {
	h, follows, me, _ := newTestHandler()
	unknown := uuid.New()

	rec := do(h.Follow, http.MethodPost, "/follow/"+unknown.String(), me, map[string]string{"id": unknown.String()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, follows.created)
}

func TestFollowersAndFollowingListings(t *testing.T) {
	h, _, me, target := newTestHandler()

	rec := do(h.Follow, http.MethodPost, "/follow/"+target.String(), me, map[string]string{"id": target.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h.Followers, http.MethodGet, "/users/"+target.String()+"/followers", me, map[string]string{"id": target.String()})
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data []Follow `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, me, env.Data[0].FollowerID)

	rec = do(h.Following, http.MethodGet, "/users/"+me.String()+"/following", me, map[string]string{"id": me.String()})
	require.Equal(t, http.StatusOK, rec.Code)
	env.Data = nil
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	require.Len(t, env.Data, 1)
	assert.Equal(t, target, env.Data[0].UserID)
}

func TestUnfollowDeletesRow(t *testing.T) {
	h, follows, me, target := newTestHandler()

	rec := do(h.Unfollow, http.MethodDelete, "/follow/"+target.String(), me, map[string]string{"id": target.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, follows.deleted, 1)
	assert.Equal(t, target, follows.deleted[0].UserID)
	assert.Equal(t, me, follows.deleted[0].FollowerID)
}
