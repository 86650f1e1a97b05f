package uuid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOfflinePlayerUUID(t *testing.T) {
	id := OfflinePlayerUUID("Notch")
	require.Equal(t, "b50ad385-829d-3141-a216-7e7d7539ba7f", id.String())
	require.Equal(t, id, OfflinePlayerUUID("Notch"))
	require.NotEqual(t, id, OfflinePlayerUUID("notch"))
	require.Equal(t, byte(3), id[6]>>4)
}

func TestUUID_Text(t *testing.T) {
	id := New()
	b, err := yaml.Marshal(map[string]UUID{"id": id})
	require.NoError(t, err)
	require.Equal(t, "id: "+id.String()+"\n", string(b))

	var out map[string]UUID
	require.NoError(t, yaml.Unmarshal(b, &out))
	require.Equal(t, id, out["id"])
}

func TestParse(t *testing.T) {
	id, err := Parse("b50ad385829d3141a2167e7d7539ba7f")
	require.NoError(t, err)
	require.Equal(t, OfflinePlayerUUID("Notch"), id)

	_, err = Parse("not a uuid")
	require.Error(t, err)

	_, err = FromBytes([]byte{1, 2, 3})
	require.Error(t, err)
}
