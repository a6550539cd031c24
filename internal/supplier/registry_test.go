package supplier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndGet(t *testing.T) {
	r := NewRegistry()

	added, err := r.Add(Supplier{Name: "Samsung Wholesale", Phone: "9876543211", Email: "samsung@wholesale.in", Address: "Delhi, NCR"})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)

	got, err := r.Get(added.ID)
	require.NoError(t, err)
	require.Equal(t, added, got)

	_, err = r.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddRequiresName(t *testing.T) {
	r := NewRegistry()
	_, err := r.Add(Supplier{Name: "  "})
	require.ErrorIs(t, err, ErrValidation)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	r := NewRegistry()
	first, err := r.Add(Supplier{Name: "First"})
	require.NoError(t, err)
	second, err := r.Add(Supplier{Name: "Second"})
	require.NoError(t, err)

	list := r.List()
	require.Len(t, list, 2)
	require.Equal(t, first.ID, list[0].ID)
	require.Equal(t, second.ID, list[1].ID)
}

func TestExportImportRoundTrip(t *testing.T) {
	r := NewRegistry()
	_, err := r.Add(Supplier{Name: "Tech Accessories Hub", Phone: "9876543212"})
	require.NoError(t, err)

	restored := NewRegistry()
	restored.Import(r.Export())
	require.Equal(t, r.Export(), restored.Export())
}
