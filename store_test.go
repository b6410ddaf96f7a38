package main

import (
	"path/filepath"
	"testing"

	codec "github.com/alacrity-engine/resource-codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func TestStoreManifest(t *testing.T) {
	resourceFile, err := bolt.Open(filepath.Join(t.TempDir(), "stage.res"), 0666, nil)
	require.NoError(t, err)
	defer resourceFile.Close()

	manifest := &Manifest{
		File: "sprites.png",
		Textures: []Texture{
			{Name: "hero", X: "10", Y: 12, W: "32", H: "32"},
			{Name: "tree", X: "0", Y: 56, W: "16", H: "8"},
		},
	}
	data, err := manifest.ToBytes()
	require.NoError(t, err)

	err = StoreManifest(resourceFile, manifest, data)
	require.NoError(t, err)

	expectedTag, err := codec.EncodeTag([]string{"hero", "tree"})
	require.NoError(t, err)

	err = resourceFile.View(func(tx *bolt.Tx) error {
		buck := tx.Bucket([]byte(manifestsBucket))
		require.NotNil(t, buck)
		assert.Equal(t, data, buck.Get([]byte("sprites.png")))

		tagBuck := tx.Bucket([]byte(tagsBucket))
		require.NotNil(t, tagBuck)
		assert.Equal(t, expectedTag, tagBuck.Get([]byte("sprites.png")))

		return nil
	})
	require.NoError(t, err)
}

func TestStoreManifestOverwrites(t *testing.T) {
	resourceFile, err := bolt.Open(filepath.Join(t.TempDir(), "stage.res"), 0666, nil)
	require.NoError(t, err)
	defer resourceFile.Close()

	manifest := &Manifest{File: "sprites.png", Textures: []Texture{}}

	err = StoreManifest(resourceFile, manifest, []byte("first"))
	require.NoError(t, err)
	err = StoreManifest(resourceFile, manifest, []byte("second"))
	require.NoError(t, err)

	err = resourceFile.View(func(tx *bolt.Tx) error {
		assert.Equal(t, []byte("second"),
			tx.Bucket([]byte(manifestsBucket)).Get([]byte("sprites.png")))

		return nil
	})
	require.NoError(t, err)
}
