// Input-file loading: the four global scalars, the adjacency matrix, and
// the posting list, in the fixed whitespace-token format.

package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Posting is one package entry from the input file.
type Posting struct {
	PostingTime int64
	Origin      int
	Dest        int
}

// Config carries everything the simulator needs: the four global transport
// parameters, the warehouse graph, and the postings in file order.
type Config struct {
	TransportCapacity int   // parcels shipped per firing, >= 1
	TransitLatency    int64 // edge traversal time, >= 0
	TransportInterval int64 // time between firings of one edge, >= 1
	RemovalCost       int64 // dig cost per parcel surfaced, >= 0

	NumWarehouses int
	Adjacency     [][]int // Adjacency[u][v] == 1 means a directed edge u -> v

	Postings []Posting
}

// tokenReader wraps a word scanner and tracks the token index for
// parse diagnostics.
type tokenReader struct {
	scanner *bufio.Scanner
	pos     int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{scanner: sc}
}

func (tr *tokenReader) next() (string, error) {
	if !tr.scanner.Scan() {
		if err := tr.scanner.Err(); err != nil {
			return "", fmt.Errorf("read failed at token %d: %w", tr.pos, err)
		}
		return "", fmt.Errorf("unexpected end of input at token %d", tr.pos)
	}
	tr.pos++
	return tr.scanner.Text(), nil
}

func (tr *tokenReader) nextInt(field string) (int64, error) {
	tok, err := tr.next()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: malformed integer %q at token %d", field, tok, tr.pos)
	}
	return v, nil
}

func (tr *tokenReader) expectLiteral(lit string) error {
	tok, err := tr.next()
	if err != nil {
		return err
	}
	if tok != lit {
		return fmt.Errorf("expected literal %q at token %d, got %q", lit, tr.pos, tok)
	}
	return nil
}

// LoadConfig opens and parses an input file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig reads the fixed token stream: the four scalars, N, the
// N x N adjacency entries, P, then P postings of the form
// "<time> pac <externalId> org <origin> dst <destination>". The external
// id token is read and discarded; internal ids are the 0-based file order.
func ParseConfig(r io.Reader) (*Config, error) {
	tr := newTokenReader(r)
	cfg := &Config{}

	capacity, err := tr.nextInt("transport capacity")
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, fmt.Errorf("transport capacity must be >= 1, got %d", capacity)
	}
	cfg.TransportCapacity = int(capacity)

	if cfg.TransitLatency, err = tr.nextInt("transit latency"); err != nil {
		return nil, err
	}
	if cfg.TransitLatency < 0 {
		return nil, fmt.Errorf("transit latency must be >= 0, got %d", cfg.TransitLatency)
	}

	if cfg.TransportInterval, err = tr.nextInt("transport interval"); err != nil {
		return nil, err
	}
	if cfg.TransportInterval < 1 {
		return nil, fmt.Errorf("transport interval must be >= 1, got %d", cfg.TransportInterval)
	}

	if cfg.RemovalCost, err = tr.nextInt("removal cost"); err != nil {
		return nil, err
	}
	if cfg.RemovalCost < 0 {
		return nil, fmt.Errorf("removal cost must be >= 0, got %d", cfg.RemovalCost)
	}

	n, err := tr.nextInt("warehouse count")
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("warehouse count must be >= 1, got %d", n)
	}
	cfg.NumWarehouses = int(n)

	cfg.Adjacency = make([][]int, cfg.NumWarehouses)
	for u := 0; u < cfg.NumWarehouses; u++ {
		cfg.Adjacency[u] = make([]int, cfg.NumWarehouses)
		for v := 0; v < cfg.NumWarehouses; v++ {
			entry, err := tr.nextInt(fmt.Sprintf("adjacency[%d][%d]", u, v))
			if err != nil {
				return nil, err
			}
			if entry != 0 && entry != 1 {
				return nil, fmt.Errorf("adjacency[%d][%d] must be 0 or 1, got %d", u, v, entry)
			}
			cfg.Adjacency[u][v] = int(entry)
		}
	}

	p, err := tr.nextInt("posting count")
	if err != nil {
		return nil, err
	}
	if p < 0 {
		return nil, fmt.Errorf("posting count must be >= 0, got %d", p)
	}

	cfg.Postings = make([]Posting, 0, p)
	for i := int64(0); i < p; i++ {
		var post Posting
		if post.PostingTime, err = tr.nextInt(fmt.Sprintf("posting %d time", i)); err != nil {
			return nil, err
		}
		if err = tr.expectLiteral("pac"); err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		// External id: present in the file but not part of the contract.
		if _, err = tr.nextInt(fmt.Sprintf("posting %d external id", i)); err != nil {
			return nil, err
		}
		if err = tr.expectLiteral("org"); err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		origin, err := tr.nextInt(fmt.Sprintf("posting %d origin", i))
		if err != nil {
			return nil, err
		}
		if err = tr.expectLiteral("dst"); err != nil {
			return nil, fmt.Errorf("posting %d: %w", i, err)
		}
		dest, err := tr.nextInt(fmt.Sprintf("posting %d destination", i))
		if err != nil {
			return nil, err
		}
		if origin < 0 || origin >= n || dest < 0 || dest >= n {
			return nil, fmt.Errorf("posting %d references warehouse outside [0, %d)", i, n)
		}
		post.Origin = int(origin)
		post.Dest = int(dest)
		cfg.Postings = append(cfg.Postings, post)
	}

	return cfg, nil
}
