package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restkata/restkata/internal/domain"
	"github.com/restkata/restkata/internal/handler"
)

// mockItemServicer is a test double for handler.ItemServicer.
// Set only the method fields your test needs.
type mockItemServicer struct {
	create    func(ctx context.Context, id int64, name string) (domain.Item, error)
	getByID   func(ctx context.Context, id int64) (domain.Item, error)
	update    func(ctx context.Context, id int64, name string) (domain.Item, error)
	delete    func(ctx context.Context, id int64) error
	listPaged func(ctx context.Context, params domain.PaginationParams) ([]domain.Item, int64, error)
	snapshot  func(ctx context.Context) (map[int64]string, error)
}

func (m *mockItemServicer) Create(ctx context.Context, id int64, name string) (domain.Item, error) {
	return m.create(ctx, id, name)
}
func (m *mockItemServicer) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	return m.getByID(ctx, id)
}
func (m *mockItemServicer) Update(ctx context.Context, id int64, name string) (domain.Item, error) {
	return m.update(ctx, id, name)
}
func (m *mockItemServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockItemServicer) ListPaged(ctx context.Context, params domain.PaginationParams) ([]domain.Item, int64, error) {
	return m.listPaged(ctx, params)
}
func (m *mockItemServicer) Snapshot(ctx context.Context) (map[int64]string, error) {
	return m.snapshot(ctx)
}

// compile-time check: mockItemServicer must satisfy handler.ItemServicer.
var _ handler.ItemServicer = (*mockItemServicer)(nil)

// mockUserServicer is a test double for handler.UserServicer.
type mockUserServicer struct {
	create  func(ctx context.Context, user domain.User) (domain.User, error)
	getByID func(ctx context.Context, id int64) (domain.User, error)
}

func (m *mockUserServicer) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserServicer) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

// mockAuthServicer is a test double for handler.AuthServicer.
type mockAuthServicer struct {
	hashPassword func(ctx context.Context, password string) (string, error)
	login        func(ctx context.Context, username, password string) (string, error)
	verifyToken  func(token string) bool
}

func (m *mockAuthServicer) HashPassword(ctx context.Context, password string) (string, error) {
	return m.hashPassword(ctx, password)
}
func (m *mockAuthServicer) Login(ctx context.Context, username, password string) (string, error) {
	return m.login(ctx, username, password)
}
func (m *mockAuthServicer) VerifyToken(token string) bool {
	return m.verifyToken(token)
}

var _ handler.AuthServicer = (*mockAuthServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors exactly how the serve command wires it in production. Pass nil
// for dependencies the test never exercises.
func newHTTPHandler(items handler.ItemServicer, users handler.UserServicer, auth handler.AuthServicer, export handler.ExportServicer) http.Handler {
	srv := handler.NewServer(items, users, auth, export, 0)
	return srv.Routes()
}

// decodeBody unmarshals rec's JSON body into a map for field assertions.
// JSON numbers arrive as float64; use assert.EqualValues to compare.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// assertDetail checks the standard error body.
func assertDetail(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	assert.Equal(t, want, decodeBody(t, rec)["detail"])
}
