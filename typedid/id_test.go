package typedid

import (
	"database/sql"
	"encoding/json"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/typesafe-go/strongtype/internal/testutil"
)

type userTag struct{}
type orderTag struct{}

type UserID = ID[userTag]
type OrderID = ID[orderTag]

func TestNewIsNonZeroAndUnique(t *testing.T) {
	a := New[userTag]()
	b := New[userTag]()

	assert.False(t, a.IsZero())
	assert.False(t, a.Equal(b))
}

func TestZeroValue(t *testing.T) {
	var id UserID

	assert.True(t, id.IsZero())
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", id.String())
}

func TestParseRoundTrip(t *testing.T) {
	id := New[userTag]()

	back, err := Parse[userTag](id.String())

	require.NoError(t, err)
	assert.True(t, id.Equal(back))
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse[userTag]("not-a-uuid")

	assert.ErrorContains(t, err, "parse typed id")
}

func TestNominalDistinctness(t *testing.T) {
	// A user ID and an order ID never mix, even though both wrap a
	// uuid.UUID. Passing one where the other is expected does not
	// compile; the types are observably distinct.
	assert.NotEqual(t, reflect.TypeOf(UserID{}), reflect.TypeOf(OrderID{}))
}

func TestJSONRoundTrip(t *testing.T) {
	ids := testutil.NewIDSource()
	id := From[userTag](ids.Next())

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"`+id.String()+`"`, string(data))

	var back UserID
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, id.Equal(back))
}

func TestYAMLRoundTrip(t *testing.T) {
	ids := testutil.NewIDSource()
	id := From[orderTag](ids.Next())

	data, err := yaml.Marshal(id)
	require.NoError(t, err)

	var back OrderID
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.True(t, id.Equal(back))
}

func TestYAMLRejectsGarbage(t *testing.T) {
	var id UserID

	assert.Error(t, yaml.Unmarshal([]byte("not-a-uuid"), &id))
}

func TestDatabaseRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE orders (id TEXT PRIMARY KEY, note TEXT NOT NULL)`)
	require.NoError(t, err)

	id := New[orderTag]()
	_, err = db.Exec(`INSERT INTO orders (id, note) VALUES (?, ?)`, id, "first")
	require.NoError(t, err)

	var back OrderID
	err = db.QueryRow(`SELECT id FROM orders WHERE note = ?`, "first").Scan(&back)
	require.NoError(t, err)

	assert.True(t, id.Equal(back))
}

func TestScanRejectsUnsupportedSource(t *testing.T) {
	var id UserID

	assert.ErrorContains(t, id.Scan(42), "unsupported source type")
}
