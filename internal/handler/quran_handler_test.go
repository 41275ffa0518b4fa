package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/azharul-dev/islamichub-api/internal/models"
	"github.com/azharul-dev/islamichub-api/internal/service"
)

type fakeQuranRepo struct {
	surahs   map[string]models.Surah
	byNumber map[int]string
	inserted []models.Surah
}

func (f *fakeQuranRepo) List(ctx context.Context, filter models.QuranFilter) ([]models.Surah, int64, error) {
	out := make([]models.Surah, 0, len(f.surahs))
	for _, s := range f.surahs {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuranRepo) FindByID(ctx context.Context, id string) (*models.Surah, error) {
	if s, ok := f.surahs[id]; ok {
		return &s, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuranRepo) FindBySurah(ctx context.Context, number int) (*models.Surah, error) {
	if id, ok := f.byNumber[number]; ok {
		s := f.surahs[id]
		return &s, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeQuranRepo) SurahExists(ctx context.Context, number int, excludeID string) (bool, error) {
	_, ok := f.byNumber[number]
	return ok, nil
}

func (f *fakeQuranRepo) Insert(ctx context.Context, surah *models.Surah) error {
	f.inserted = append(f.inserted, *surah)
	return nil
}

func (f *fakeQuranRepo) Update(ctx context.Context, id string, surah *models.Surah) error {
	if _, ok := f.surahs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.surahs[id] = *surah
	return nil
}

func (f *fakeQuranRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.surahs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.surahs, id)
	return nil
}

func newQuranHandler(repo *fakeQuranRepo) *QuranHandler {
	svc := service.NewQuranService(repo, validator.New(), zap.NewNop(), nil, 0, nil, false)
	return NewQuranHandler(svc)
}

type testEnvelope struct {
	Data       json.RawMessage        `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestQuranHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeQuranRepo{surahs: map[string]models.Surah{
		"a": {SurahNumber: 1, NameEnglish: "Al-Fatiha"},
	}}
	handler := newQuranHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/quran?page=1&limit=10", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.NotNil(t, envelope.Pagination)
	assert.Equal(t, float64(1), envelope.Pagination["total"])
}

func TestQuranHandlerListBySurahNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeQuranRepo{
		surahs:   map[string]models.Surah{"a": {SurahNumber: 36, NameEnglish: "Ya-Sin"}},
		byNumber: map[int]string{36: "a"},
	}
	handler := newQuranHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/quran?surah=36", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	var surah models.Surah
	require.NoError(t, json.Unmarshal(envelope.Data, &surah))
	assert.Equal(t, "Ya-Sin", surah.NameEnglish)
	assert.Nil(t, envelope.Pagination)
}

func TestQuranHandlerListRejectsNonNumericSurah(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newQuranHandler(&fakeQuranRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/quran?surah=yasin", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error["code"])
}

func TestQuranHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newQuranHandler(&fakeQuranRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/quran/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", envelope.Error["code"])
}

func TestQuranHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeQuranRepo{byNumber: make(map[int]string)}
	handler := newQuranHandler(repo)

	payload := `{"surah_number":103,"name_arabic":"العصر","name_english":"Al-Asr","total_ayahs":3,"revelation_place":"makkah"}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/quran", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, 103, repo.inserted[0].SurahNumber)
}

func TestQuranHandlerCreateMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newQuranHandler(&fakeQuranRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/quran", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuranHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &fakeQuranRepo{surahs: map[string]models.Surah{"a": {SurahNumber: 1}}}
	handler := newQuranHandler(repo)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/quran/a", nil)
	c.Params = gin.Params{{Key: "id", Value: "a"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.surahs)
}
