package cart

// SlotStorage is a string-keyed slot the cart is persisted into. Get reports
// ok=false when the key has never been written. Two scopes writing the same
// key race last-write-wins at this layer; the store does not resolve that.
type SlotStorage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
