package main

import (
	codec "github.com/alacrity-engine/resource-codec"
	bolt "go.etcd.io/bbolt"
)

const (
	manifestsBucket = "manifests"
	tagsBucket      = "tags"
)

// StoreManifest puts the encoded manifest and the
// tag of its texture names into the resource file.
func StoreManifest(resourceFile *bolt.DB, manifest *Manifest, data []byte) error {
	names := make([]string, 0, len(manifest.Textures))

	for _, texture := range manifest.Textures {
		names = append(names, texture.Name)
	}

	tagData, err := codec.EncodeTag(names)

	if err != nil {
		return err
	}

	return resourceFile.Update(func(tx *bolt.Tx) error {
		buck, err := tx.CreateBucketIfNotExists([]byte(manifestsBucket))

		if err != nil {
			return err
		}

		err = buck.Put([]byte(manifest.File), data)

		if err != nil {
			return err
		}

		tagBuck, err := tx.CreateBucketIfNotExists([]byte(tagsBucket))

		if err != nil {
			return err
		}

		return tagBuck.Put([]byte(manifest.File), tagData)
	})
}
