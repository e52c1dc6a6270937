package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	api "github.com/magazyn-io/magazyn/internal/http"
	handler "github.com/magazyn-io/magazyn/internal/http/handlers"
	"github.com/magazyn-io/magazyn/internal/models"
	"github.com/magazyn-io/magazyn/internal/repo"
)

var (
	token        string
	categoryRepo *repo.InMemoryCategoryRepository
	productRepo  *repo.InMemoryProductRepository
	alertSender  *stubAlertSender
)

// stubAlertSender records alert dispatches instead of talking SMTP.
type stubAlertSender struct {
	sent [][]models.Product
	err  error
}

func (s *stubAlertSender) SendLowStock(items []models.Product) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, items)
	return nil
}

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	categoryRepo = repo.NewInMemoryCategoryRepository()
	productRepo = repo.NewInMemoryProductRepository()
	categoryRepo.SetProductRepository(productRepo)
	productRepo.SetCategoryRepository(categoryRepo)
	handler.SetCategoryRepo(categoryRepo)
	handler.SetProductRepo(productRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	alertSender = &stubAlertSender{}
	handler.SetAlertSender(alertSender)
}

func clearAll() {
	productRepo.Clear()
	categoryRepo.Clear()
	alertSender.sent = nil
	alertSender.err = nil
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createCategory(r http.Handler, c handler.CategoryRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(c)
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateQuantity(r http.Handler, productID int, q handler.QuantityUpdateRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(q)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/products/%d/quantity", productID), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doDelete(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newRecorderFor(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// mustCreateCatalog seeds one category and returns its id.
func mustCreateCatalog(r http.Handler, name string) int {
	w := createCategory(r, handler.CategoryRequest{Name: name})
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("could not seed category %q: status %d", name, w.Code))
	}
	var resp handler.CategoryResponse
	json.NewDecoder(w.Body).Decode(&resp)
	return resp.Id
}
