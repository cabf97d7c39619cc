package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
)

// fakeRow implements rowScanner with canned column values
type fakeRow struct {
	id       string
	document string
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.id
	*(dest[1].(*[]byte)) = []byte(r.document)
	return nil
}

func TestEncodeFieldsWritesNulls(t *testing.T) {
	doc, err := encodeFields(domain.UserFields{Age: domain.Some(31.0).Ptr()})

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":null,"surname":null,"age":31}`, doc)
}

func TestScanUser(t *testing.T) {
	id := "0b8f4a7e-3c1d-4a5b-9e2f-6d7c8b9a0f1e"

	t.Run("full document", func(t *testing.T) {
		user, err := scanUser(fakeRow{id: id, document: `{"name":"Ann","surname":"Lee","age":30}`})

		require.NoError(t, err)
		assert.Equal(t, domain.NewUserFields("Ann", "Lee", 30).WithID(id), user)
	})

	t.Run("null and missing keys", func(t *testing.T) {
		user, err := scanUser(fakeRow{id: id, document: `{"name":null,"age":0}`})

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Nil(t, user.Name)
		assert.Nil(t, user.Surname)
		require.NotNil(t, user.Age)
		assert.Equal(t, 0.0, *user.Age)
	})

	t.Run("scan error passes through", func(t *testing.T) {
		_, err := scanUser(fakeRow{err: sql.ErrNoRows})
		assert.True(t, errors.Is(err, sql.ErrNoRows))
	})

	t.Run("corrupt document", func(t *testing.T) {
		_, err := scanUser(fakeRow{id: id, document: `not json`})
		assert.Error(t, err)
	})
}

func TestNewPostgresUserStore(t *testing.T) {
	s := NewPostgresUserStore(&sql.DB{}, nil)
	assert.NotNil(t, s)
	assert.NotNil(t, s.logger)

	assert.Panics(t, func() {
		NewPostgresUserStore(nil, nil)
	})
}
