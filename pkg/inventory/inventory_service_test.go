package inventory

import (
	"EcoPanier/domain"
	"EcoPanier/internal/testutil"
	"EcoPanier/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	result domain.ProductLookupResult
	err    error
	calls  int
}

func (f *fakeLookup) LookupBarcode(ctx context.Context, barcode string) (domain.ProductLookupResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeS3 struct {
	uploaded []string
	deleted  []string
	err      error
}

const fakeS3Prefix = "https://bucket.test/"

func (f *fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := folder + "/" + fileName + ".jpg"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, objectKey)
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if len(link) > len(fakeS3Prefix) && link[:len(fakeS3Prefix)] == fakeS3Prefix {
		return link[len(fakeS3Prefix):]
	}
	return ""
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return fakeS3Prefix + objectKey
}

var _ storage.AwsS3 = (*fakeS3)(nil)

type serviceFixture struct {
	service   InventoryService
	repo      InventoryRepository
	lookup    *fakeLookup
	s3        *fakeS3
	sessionID string
}

func newServiceFixture(t *testing.T) serviceFixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := serviceFixture{
		repo:      NewInventoryRepository(db),
		lookup:    &fakeLookup{},
		s3:        &fakeS3{},
		sessionID: testutil.NewSession(t, db),
	}
	f.service = NewInventoryService(f.repo, testutil.FixedClock(t, "2024-05-10"), f.lookup, f.s3)
	return f
}

func TestInventoryService_AddAppliesDefaults(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	res, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "  Pain  "})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "Pain", res.Name)
	assert.Equal(t, domain.DefaultCategory, res.Category)
	assert.Equal(t, domain.DefaultUnit, res.Unit)
	assert.Equal(t, 1.0, res.Quantity)
	assert.Equal(t, domain.DefaultItemImage, res.Image)
	assert.Equal(t, "2024-06-09", res.ExpiryDate)
	assert.Equal(t, 30, res.DaysUntilExpiry)
	assert.Equal(t, domain.StatusSafe, res.Status)
}

func TestInventoryService_AddWithUnparseableDateIsUrgent(t *testing.T) {
	f := newServiceFixture(t)

	res, err := f.service.AddItem(context.Background(), f.sessionID, domain.AddInventoryItemRequest{
		Name:       "Lait",
		Quantity:   2,
		ExpiryDate: "bientôt",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-10", res.ExpiryDate)
	assert.Equal(t, 0, res.DaysUntilExpiry)
	assert.Equal(t, domain.StatusUrgent, res.Status)
}

func TestInventoryService_AddRejectsInvalidInput(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Lait", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	items, err := f.service.ListItems(ctx, f.sessionID, domain.InventoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryService_PersistsAcrossRestart(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Pommes", "Lait", "Riz"} {
		_, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: name, ExpiryDate: "2024-05-20"})
		require.NoError(t, err)
	}

	restarted := NewInventoryService(f.repo, testutil.FixedClock(t, "2024-05-18"), f.lookup, f.s3)
	items, err := restarted.ListItems(ctx, f.sessionID, domain.InventoryFilter{Sort: SortInsertion})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Pommes", items[0].Name)
	assert.Equal(t, "Riz", items[2].Name)
	assert.Equal(t, 2, items[0].DaysUntilExpiry)
	assert.Equal(t, domain.StatusUrgent, items[0].Status)
}

func TestInventoryService_UpdateReplacesAndReclassifies(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Poulet", ExpiryDate: "2024-05-11"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUrgent, added.Status)

	updated, err := f.service.UpdateItem(ctx, f.sessionID, added.ID, domain.UpdateInventoryItemRequest{
		Name:       "Poulet entier",
		Category:   "Viandes",
		Quantity:   1.5,
		Unit:       "kg",
		ExpiryDate: "2024-05-25",
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, "Poulet entier", updated.Name)
	assert.Equal(t, domain.StatusSafe, updated.Status)

	got, err := f.service.GetItem(ctx, f.sessionID, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "kg", got.Unit)
}

func TestInventoryService_UpdateMissingItem(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.UpdateItem(context.Background(), f.sessionID, "missing", domain.UpdateInventoryItemRequest{
		Name: "Lait", Quantity: 1, ExpiryDate: "2024-05-12",
	})
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)
}

func TestInventoryService_DeleteIsSilent(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Lait"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteItem(ctx, f.sessionID, added.ID))
	require.NoError(t, f.service.DeleteItem(ctx, f.sessionID, added.ID))

	_, err = f.service.GetItem(ctx, f.sessionID, added.ID)
	assert.ErrorIs(t, err, domain.ErrInventoryItemNotFound)

	rows, err := f.repo.GetItemsBySession(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestInventoryService_ListFiltersAndSortsByUrgency(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	for _, req := range []domain.AddInventoryItemRequest{
		{Name: "Pommes", Category: "Fruits", ExpiryDate: "2024-05-25"},
		{Name: "Lait", Category: "Produits laitiers", ExpiryDate: "2024-05-11"},
		{Name: "Pommes de terre", Category: "Légumes", ExpiryDate: "2024-05-14"},
	} {
		_, err := f.service.AddItem(ctx, f.sessionID, req)
		require.NoError(t, err)
	}

	items, err := f.service.ListItems(ctx, f.sessionID, domain.InventoryFilter{Category: domain.AllCategories})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Lait", "Pommes de terre", "Pommes"}, []string{items[0].Name, items[1].Name, items[2].Name})

	items, err = f.service.ListItems(ctx, f.sessionID, domain.InventoryFilter{Search: "pomm", Category: "Fruits"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Pommes", items[0].Name)
}

func TestInventoryService_Dashboard(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	for _, d := range []string{"2024-05-10", "2024-05-12", "2024-05-15", "2024-06-10"} {
		_, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "x" + d, ExpiryDate: d})
		require.NoError(t, err)
	}

	stats, err := f.service.GetDashboardStats(ctx, f.sessionID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.UrgentItems)
	assert.Equal(t, 1, stats.SoonItems)
	assert.Equal(t, 1, stats.SafeItems)
	assert.Equal(t, 1, stats.ExpiredItems)
	assert.Len(t, stats.TopUrgent, 2)
}

func TestInventoryService_ScanFound(t *testing.T) {
	f := newServiceFixture(t)
	f.lookup.result = domain.ProductLookupResult{
		Found:        true,
		Name:         "Yaourt nature",
		Category:     "produits laitiers",
		ImageURL:     "https://images.example/yaourt.jpg",
		QuantityText: "4 x 125 g",
	}

	res, err := f.service.ScanBarcode(context.Background(), f.sessionID, domain.ScanBarcodeRequest{Barcode: "3033490004743"})
	require.NoError(t, err)

	assert.Equal(t, domain.ScanStatusAdded, res.Status)
	require.NotNil(t, res.Item)
	assert.Equal(t, "Yaourt nature", res.Item.Name)
	assert.Equal(t, "4 x 125 g", res.Item.Unit)
	assert.Equal(t, 1.0, res.Item.Quantity)
	assert.Equal(t, "2024-06-09", res.Item.ExpiryDate)
	assert.Equal(t, "3033490004743", res.Item.Barcode)
}

func TestInventoryService_ScanNotFoundAsksForManualEntry(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	res, err := f.service.ScanBarcode(ctx, f.sessionID, domain.ScanBarcodeRequest{Barcode: "999"})
	require.NoError(t, err)
	assert.Equal(t, domain.ScanStatusManualEntryRequired, res.Status)
	assert.Equal(t, "999", res.Barcode)
	assert.Nil(t, res.Item)

	f.lookup.err = domain.ExternalError("openfoodfacts", errors.New("timeout"))
	res, err = f.service.ScanBarcode(ctx, f.sessionID, domain.ScanBarcodeRequest{Barcode: "999"})
	require.NoError(t, err)
	assert.Equal(t, domain.ScanStatusManualEntryRequired, res.Status)
	assert.Equal(t, domain.MessageProductLookupError, res.Message)

	items, err := f.service.ListItems(ctx, f.sessionID, domain.InventoryFilter{})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInventoryService_UploadImage(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	added, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Fromage"})
	require.NoError(t, err)

	res, err := f.service.UploadItemImage(ctx, f.sessionID, domain.UploadItemImageRequest{
		ItemID: added.ID,
		Image:  &multipart.FileHeader{Filename: "fromage.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, fakeS3Prefix+"inventory-items/item-"+added.ID+".jpg", res.Image)

	require.NoError(t, f.service.DeleteItem(ctx, f.sessionID, added.ID))
	assert.Equal(t, []string{"inventory-items/item-" + added.ID + ".jpg"}, f.s3.deleted)
}

func TestInventoryService_UploadImageStorageFailure(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.s3.err = errors.New("bucket unreachable")

	added, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Fromage"})
	require.NoError(t, err)

	_, err = f.service.UploadItemImage(ctx, f.sessionID, domain.UploadItemImageRequest{
		ItemID: added.ID,
		Image:  &multipart.FileHeader{Filename: "fromage.jpg"},
	})
	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestInventoryService_UploadImageRejectsFileType(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()
	f.s3.err = storage.ErrFileTypeNotAllowed

	added, err := f.service.AddItem(ctx, f.sessionID, domain.AddInventoryItemRequest{Name: "Fromage"})
	require.NoError(t, err)

	_, err = f.service.UploadItemImage(ctx, f.sessionID, domain.UploadItemImageRequest{
		ItemID: added.ID,
		Image:  &multipart.FileHeader{Filename: "fromage.gif"},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrExternalService)

	item, err := f.service.GetItem(ctx, f.sessionID, added.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultItemImage, item.Image)
}

func TestInventoryService_InvalidSession(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.ListItems(context.Background(), "not-a-uuid", domain.InventoryFilter{})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
