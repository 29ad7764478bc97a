package voxel

import "sync"

// ChunkStore holds loaded chunks keyed by position, generating on demand
// via a pluggable Generator (spec §4.13, grounded on the original
// game-crate ChunkStore, simplified from its grouped-array layout to a
// plain map since the grouping there exists purely for cache locality).
type ChunkStore struct {
	Generator Generator
	Height    int

	mu     sync.RWMutex
	chunks map[ChunkPos]*Chunk
}

// NewChunkStore creates an empty store backed by gen, producing chunks of
// the given world height.
func NewChunkStore(gen Generator, height int) *ChunkStore {
	return &ChunkStore{
		Generator: gen,
		Height:    height,
		chunks:    make(map[ChunkPos]*Chunk),
	}
}

// Get returns the chunk at pos if already loaded, without generating it.
func (s *ChunkStore) Get(pos ChunkPos) (*Chunk, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.chunks[pos]
	return c, ok
}

// Load returns the chunk at pos, generating and caching it first if
// necessary.
func (s *ChunkStore) Load(pos ChunkPos) *Chunk {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.chunks[pos]; ok {
		return c
	}
	c := s.Generator.Generate(pos, s.Height)
	s.chunks[pos] = c
	return c
}

// Unload discards the chunk at pos, if loaded.
func (s *ChunkStore) Unload(pos ChunkPos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.chunks, pos)
}

// Len reports the number of currently loaded chunks.
func (s *ChunkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}
