// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// store.go — typed convenience layer over DB: values are encoded through a
// pluggable codec (JSON, MessagePack, CBOR) and optionally encrypted at
// rest with AES-256-GCM.

package gorocks

import (
	"errors"
	"fmt"

	"github.com/AndrewDonelson/gorocks/internal/codec"
)

// Re-export so callers only import this package.
type Codec = codec.Codec

// StoreConfig configures a Store.
type StoreConfig struct {
	// Codec encodes and decodes values. Defaults to JSON.
	Codec Codec

	// EncryptionKey enables AES-256-GCM at-rest encryption of encoded
	// values when set; must be exactly 32 bytes. Nil disables encryption.
	EncryptionKey []byte

	// WriteOptions / ReadOptions used for every operation. Nil uses the
	// engine defaults.
	WriteOptions *WriteOptions
	ReadOptions  *ReadOptions
}

// Store is a typed view over a DB. It adds nothing to the engine's
// guarantees; it only moves encoding and encryption out of call sites.
type Store struct {
	db    *DB
	codec Codec
	enc   Encryptor
	wo    *WriteOptions
	ro    *ReadOptions
}

// NewStore creates a Store over db from cfg.
func NewStore(db *DB, cfg StoreConfig) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("%w: nil DB", ErrInvalidConfig)
	}
	if cfg.Codec == nil {
		cfg.Codec = codec.Default
	}
	s := &Store{
		db:    db,
		codec: cfg.Codec,
		wo:    cfg.WriteOptions,
		ro:    cfg.ReadOptions,
	}
	if len(cfg.EncryptionKey) > 0 {
		enc, err := NewAES256GCM(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		s.enc = enc
	}
	return s, nil
}

// PutValue encodes v with the configured codec (encrypting if configured)
// and stores it under key.
func (s *Store) PutValue(key string, v any) error {
	raw, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w (%s): %v", ErrEncodeFailed, s.codec.Name(), err)
	}
	if s.enc != nil {
		if raw, err = s.enc.Encrypt(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
	}
	return s.db.Put(s.wo, []byte(key), raw)
}

// GetValue loads the value under key into dest (a non-nil pointer). Returns
// ErrNotFound when the key does not exist.
func (s *Store) GetValue(key string, dest any) error {
	raw, err := s.db.Get(s.ro, []byte(key))
	if err != nil {
		return err
	}
	if s.enc != nil {
		if raw, err = s.enc.Decrypt(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
	}
	if err := s.codec.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w (%s): %v", ErrDecodeFailed, s.codec.Name(), err)
	}
	return nil
}

// DeleteValue removes key. Deleting a missing key is not an error.
func (s *Store) DeleteValue(key string) error {
	return s.db.Delete(s.wo, []byte(key))
}

// Has reports whether key exists.
func (s *Store) Has(key string) (bool, error) {
	_, err := s.db.Get(s.ro, []byte(key))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
