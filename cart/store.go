package cart

import (
	"encoding/json"
	"log"

	"github.com/keianmejia/maribelle-api/models"
)

// DefaultKey is the storage key the storefront has always persisted carts
// under. Carts written under older keys are simply ignored.
const DefaultKey = "cart_v2"

// Subscriber is notified after every persisted mutation with the fresh cart
// and its line-quantity sum. The count drives the cart badge, which hides
// entirely at 0.
type Subscriber func(lines []models.CartLine, count int)

// Store owns the durable cart for one storage key. Every mutation is a
// synchronous read-modify-write followed by a full persist and a
// rebroadcast; there is no batching and no partial write.
type Store struct {
	storage SlotStorage
	key     string
	subs    []Subscriber
}

func NewStore(storage SlotStorage, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{storage: storage, key: key}
}

func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// Read never fails: a missing or malformed slot value is an empty cart.
// Corrupted local state must not block browsing.
func (s *Store) Read() []models.CartLine {
	raw, ok, err := s.storage.Get(s.key)
	if err != nil {
		log.Println("Cart slot read failed, treating as empty:", err)
		return []models.CartLine{}
	}
	if !ok || raw == "" {
		return []models.CartLine{}
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return []models.CartLine{}
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	return lines
}

// Add increments the quantity of an existing line with the same product id
// instead of appending a duplicate.
func (s *Store) Add(product models.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}
	lines := s.Read()
	for i := range lines {
		if lines[i].ID == product.ID {
			lines[i].Qty += qty
			return s.write(lines)
		}
	}
	lines = append(lines, models.CartLine{
		ID:    product.ID,
		Title: product.Title,
		Price: product.Price,
		Img:   product.Img,
		Qty:   qty,
	})
	return s.write(lines)
}

// SetQuantity clamps qty to a minimum of 1. An unknown id leaves the cart
// unchanged, but the write still happens.
func (s *Store) SetQuantity(id string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	lines := s.Read()
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Qty = qty
		}
	}
	return s.write(lines)
}

// Remove deletes the line with the given id if present; otherwise the cart
// is written back unchanged.
func (s *Store) Remove(id string) error {
	lines := s.Read()
	kept := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}
	return s.write(kept)
}

// Clear resets the cart wholesale, for the explicit clear action and
// checkout abandonment.
func (s *Store) Clear() error {
	return s.write([]models.CartLine{})
}

func (s *Store) Total() float64 {
	var total float64
	for _, line := range s.Read() {
		total += line.Price * float64(line.Qty)
	}
	return total
}

func (s *Store) Count() int {
	return countOf(s.Read())
}

func (s *Store) write(lines []models.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.storage.Set(s.key, string(payload)); err != nil {
		return err
	}
	count := countOf(lines)
	for _, fn := range s.subs {
		fn(lines, count)
	}
	return nil
}

func countOf(lines []models.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Qty
	}
	return count
}
