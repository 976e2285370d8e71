package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/formtrack/formtrack/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(Config{BaseURL: server.URL}, zap.NewNop())
	return client, server
}

func TestListCustomers(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customers":[{"id":1,"name":"Acme","code":"ACM"},{"id":2,"name":"Globex","code":"GLX"}]}`))
	}))

	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Acme", customers[0].Name)
	assert.Equal(t, int64(2), customers[1].ID)
}

func TestListCostCenters_ScopedToCustomer(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cost-centers", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("customer_id"))
		w.Write([]byte(`{"cost_centers":[{"id":3,"name":"R&D","code":"RD","customer_id":7,"customer":{"id":7,"name":"Acme","code":"ACM"}}]}`))
	}))

	centers, err := client.ListCostCenters(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, centers, 1)
	assert.Equal(t, int64(7), centers[0].CustomerID)
}

func TestListCostCenters_UnscopedOmitsFilter(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("customer_id"))
		w.Write([]byte(`{"cost_centers":[]}`))
	}))

	_, err := client.ListCostCenters(context.Background(), 0)
	require.NoError(t, err)
}

func TestListUsers_RoleFilter(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "project_manager", r.URL.Query().Get("role"))
		w.Write([]byte(`{"users":[{"id":3,"full_name":"Jane Reviewer","email":"jane@example.com","role":"project_manager","is_active":true}]}`))
	}))

	users, err := client.ListUsers(context.Background(), entity.RoleProjectManager)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, users[0].Role.CanReview())
}

func TestListForms_FilterPassthrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "reimbursement", query.Get("form_type"))
		assert.Equal(t, "pending", query.Get("status"))
		assert.Equal(t, "1", query.Get("submitted_by_id"))
		assert.False(t, query.Has("assigned_to_id"))
		w.Write([]byte(`{"forms":[{"id":42,"form_number":"REI-2026-0001","form_type":"reimbursement","total_amount":150.5,"status":"pending","cost_center":{"id":3,"name":"R&D","code":"RD","customer":{"id":7,"name":"Acme","code":"ACM"}},"submitted_by":{"id":1,"full_name":"John Doe"}}],"total":1}`))
	}))

	forms, total, err := client.ListForms(context.Background(), FormFilter{
		FormType:      entity.FormTypeReimbursement,
		Status:        entity.StatusPending,
		SubmittedByID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, forms, 1)
	assert.Equal(t, "REI-2026-0001", forms[0].FormNumber)
	assert.True(t, forms[0].TotalAmount.Equal(decimal.RequireFromString("150.5")))
}

func TestCreateForm_MultipartFields(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/forms", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(16<<20))

		assert.Equal(t, "cash_advance", r.FormValue("form_type"))
		assert.Equal(t, "150", r.FormValue("total_amount"))
		assert.Equal(t, "7", r.FormValue("cost_center_id"))
		assert.Equal(t, "1", r.FormValue("submitted_by_id"))

		// empty optionals must not appear at all
		_, hasRemarks := r.MultipartForm.Value["remarks"]
		assert.False(t, hasRemarks)
		_, hasAssignee := r.MultipartForm.Value["assigned_to_id"]
		assert.False(t, hasAssignee)
		assert.Empty(t, r.MultipartForm.File["attachment"])

		w.Write([]byte(`{"id":99,"form_number":"CA-2026-0005","form_type":"cash_advance","total_amount":150,"status":"pending","cost_center":{"id":7},"submitted_by":{"id":1}}`))
	}))

	form, err := client.CreateForm(context.Background(), CreateFormInput{
		FormType:      entity.FormTypeCashAdvance,
		TotalAmount:   decimal.NewFromInt(150),
		CostCenterID:  7,
		SubmittedByID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, form.Status)
	assert.Equal(t, "CA-2026-0005", form.FormNumber)
}

func TestCreateForm_WithAttachment(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(16<<20))

		files := r.MultipartForm.File["attachment"]
		require.Len(t, files, 1)
		assert.Equal(t, "receipt.pdf", files[0].Filename)

		file, err := files[0].Open()
		require.NoError(t, err)
		defer file.Close()
		content := make([]byte, 11)
		n, _ := file.Read(content)
		assert.Equal(t, "pdf content", string(content[:n]))

		assert.Equal(t, "taxi fare", r.FormValue("remarks"))
		assert.Equal(t, "3", r.FormValue("assigned_to_id"))

		w.Write([]byte(`{"id":100,"status":"pending","attachment_path":"/uploads/receipt.pdf"}`))
	}))

	form, err := client.CreateForm(context.Background(), CreateFormInput{
		FormType:      entity.FormTypeReimbursement,
		TotalAmount:   decimal.RequireFromString("42.10"),
		Remarks:       "taxi fare",
		CostCenterID:  7,
		SubmittedByID: 1,
		AssignedToID:  3,
		Attachment:    &Attachment{Filename: "receipt.pdf", Content: strings.NewReader("pdf content")},
	})
	require.NoError(t, err)
	assert.True(t, form.HasAttachment())
}

func TestUpdateFormStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/forms/42/status", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "approved", r.FormValue("status"))
		w.Write([]byte(`{"id":42,"status":"approved"}`))
	}))

	form, err := client.UpdateFormStatus(context.Background(), 42, entity.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, form.Status)
}

func TestAssignForm(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/forms/42/assign", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "3", r.FormValue("assigned_to_id"))
		w.Write([]byte(`{"id":42,"status":"pending","assigned_to_id":3}`))
	}))

	form, err := client.AssignForm(context.Background(), 42, 3)
	require.NoError(t, err)
	require.NotNil(t, form.AssignedToID)
	assert.Equal(t, int64(3), *form.AssignedToID)
}

func TestDashboardStats(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dashboard/stats", r.URL.Path)
		w.Write([]byte(`{"total_forms":10,"pending_forms":4,"approved_forms":5,"rejected_forms":1}`))
	}))

	stats, err := client.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalForms)
	assert.Equal(t, 4, stats.PendingForms)
}

func TestDo_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"cost center not found"}`))
	}))

	_, err := client.GetForm(context.Background(), 1)
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "cost center not found")
}

func TestDo_DecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))

	_, err := client.ListCustomers(context.Background())
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDo_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(Config{BaseURL: server.URL}, zap.NewNop())
	server.Close()

	_, err := client.ListCustomers(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestAttachmentURL(t *testing.T) {
	client := NewClient(Config{
		BaseURL:       "http://localhost:8000",
		PublicBaseURL: "https://files.example.com/",
	}, zap.NewNop())

	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty path", "", ""},
		{"rooted path", "/uploads/a.pdf", "https://files.example.com/uploads/a.pdf"},
		{"relative path", "uploads/a.pdf", "https://files.example.com/uploads/a.pdf"},
		{"absolute url", "https://cdn.example.com/a.pdf", "https://cdn.example.com/a.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.AttachmentURL(tt.path))
		})
	}
}

func TestAttachmentURL_DefaultsToBaseURL(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:8000"}, zap.NewNop())
	assert.Equal(t, "http://localhost:8000/uploads/a.pdf", client.AttachmentURL("/uploads/a.pdf"))
}
