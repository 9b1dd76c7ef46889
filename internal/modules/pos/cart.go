package pos

// MergeLine adds a line to a cart. Scanning the same (product, size) again
// increments the existing line instead of appending a duplicate.
func MergeLine(cart []CartLine, line CartLine) []CartLine {
	for i := range cart {
		if cart[i].ProductID == line.ProductID && cart[i].Size == line.Size {
			cart[i].Quantity += line.Quantity
			return cart
		}
	}
	return append(cart, line)
}
