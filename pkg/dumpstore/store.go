package dumpstore

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/babarinde/mezzio-swoole/pkg/bodystream"
)

var DefaultDir = os.TempDir() + "/body-dumps"

// Store persists body dumps as plain files in a single directory. Names are
// generated from the creation time plus a per process counter and returned to
// the caller; List, Open and Remove work on those names.
type Store struct {
	dir     string
	counter int
}

func NewStore(dir string) *Store {
	return &Store{
		dir: dir,
	}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Save(data []byte) (string, error) {
	file, name, err := s.create()
	if err != nil {
		return "", err
	}

	_, err = file.Write(data)
	err = errors.Join(err, file.Close())
	if err != nil {
		return "", err
	}

	return name, nil
}

// SaveStream persists the full content of the stream no matter where its
// cursor sits, and leaves the cursor untouched.
func (s *Store) SaveStream(stream *bodystream.BufferStream) (string, error) {
	file, name, err := s.create()
	if err != nil {
		return "", err
	}

	_, err = stream.Clone().WriteTo(file)
	err = errors.Join(err, file.Close())
	if err != nil {
		return "", err
	}

	return name, nil
}

func (s *Store) create() (*os.File, string, error) {
	err := ensureDir(s.dir)
	if err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("dump-%d-%d", time.Now().Unix(), s.counter)
	s.counter++
	file, err := os.Create(s.dir + "/" + name)
	if err != nil {
		return nil, "", err
	}

	return file, name, nil
}

func (s *Store) List() ([]string, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (s *Store) Open(name string) (*bodystream.BufferStream, error) {
	data, err := os.ReadFile(s.dir + "/" + name)
	if err != nil {
		return nil, err
	}

	return bodystream.NewBufferStream(bodystream.BytesSource(data)), nil
}

func (s *Store) Remove(name string) error {
	return os.Remove(s.dir + "/" + name)
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}
