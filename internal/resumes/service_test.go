package resumes

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/storage/object/local"
	"resume-builder/resume/render"
)

func TestLatestReturnsMostRecentSave(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo(), nil)

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := svc.Save(ctx, "user-1", Fields{FullName: name})
		require.NoError(t, err)
	}
	_, err := svc.Save(ctx, "user-2", Fields{FullName: "Other"})
	require.NoError(t, err)

	rec, err := svc.Latest(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Third", rec.Fields.FullName)
	assert.Equal(t, "user-1", rec.UserID)
}

func TestSaveKeepsEarlierRecords(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()
	svc := NewService(repo, nil)

	first, err := svc.Save(ctx, "user-1", Fields{Skills: "Go"})
	require.NoError(t, err)
	second, err := svc.Save(ctx, "user-1", Fields{Skills: "SQL"})
	require.NoError(t, err)

	assert.Greater(t, second.Seq, first.Seq)
	assert.Equal(t, 2, repo.Count("user-1"))
}

func TestLatestWithoutRecords(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)
	_, err := svc.Latest(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoRecord)

	_, err = svc.Generate(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestSaveRequiresUser(t *testing.T) {
	svc := NewService(NewMemoryRepo(), nil)
	_, err := svc.Save(context.Background(), " ", Fields{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGenerateRendersLatestFields(t *testing.T) {
	ctx := context.Background()
	var got render.Document
	svc := &Service{
		Repo: NewMemoryRepo(),
		Render: func(doc render.Document) ([]byte, error) {
			got = doc
			return []byte("%PDF-stub"), nil
		},
	}
	_, err := svc.Save(ctx, "user-1", Fields{FullName: "Old"})
	require.NoError(t, err)
	_, err = svc.Save(ctx, "user-1", Fields{
		FullName:   "Ana Lee",
		Email:      "ana@example.com",
		Phone:      "555-0100",
		Summary:    "Engineer",
		Skills:     "Go, SQL",
		Experience: "Acme 2020-2024",
		Education:  "BSc",
	})
	require.NoError(t, err)

	data, err := svc.Generate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), data)
	assert.Equal(t, render.Document{
		FullName:   "Ana Lee",
		Email:      "ana@example.com",
		Phone:      "555-0100",
		Summary:    "Engineer",
		Skills:     "Go, SQL",
		Experience: "Acme 2020-2024",
		Education:  "BSc",
	}, got)
}

func TestGenerateArchivesDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := local.New(dir)
	svc := &Service{
		Repo:    NewMemoryRepo(),
		Archive: store,
		Render: func(render.Document) ([]byte, error) {
			return []byte("pdf-bytes"), nil
		},
	}
	_, err := svc.Save(ctx, "user-1", Fields{FullName: "Ana"})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "user-1")
	require.NoError(t, err)

	key, err := object.UserKey("user-1", DownloadName)
	require.NoError(t, err)
	archived, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(archived))
}

type failingStore struct{}

func (failingStore) Put(context.Context, string, string, io.Reader) (int64, error) {
	return 0, errors.New("disk full")
}

func TestGenerateIgnoresArchiveFailure(t *testing.T) {
	ctx := context.Background()
	svc := &Service{
		Repo:    NewMemoryRepo(),
		Archive: failingStore{},
		Render: func(render.Document) ([]byte, error) {
			return []byte("pdf"), nil
		},
	}
	_, err := svc.Save(ctx, "user-1", Fields{})
	require.NoError(t, err)

	data, err := svc.Generate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(data))
}

func TestGenerateReturnsRenderError(t *testing.T) {
	ctx := context.Background()
	renderErr := errors.New("boom")
	svc := &Service{
		Repo: NewMemoryRepo(),
		Render: func(render.Document) ([]byte, error) {
			return nil, renderErr
		},
	}
	_, err := svc.Save(ctx, "user-1", Fields{})
	require.NoError(t, err)

	_, err = svc.Generate(ctx, "user-1")
	assert.ErrorIs(t, err, renderErr)
}
