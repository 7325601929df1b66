package mixedradix

// IncrementWrapping adds 1 to the counter, wrapping around to all zeros on overflow
// It returns the carry out of the most significant digit: 1 if the counter wrapped, 0 otherwise.
func (c *Counter[T]) IncrementWrapping() T {
	for idx := len(c.values) - 1; idx >= 0; idx-- {
		if c.values[idx]++; c.values[idx] < c.limits[idx] {
			return 0
		}
		c.values[idx] = 0
	}
	c.logger().Debugf("mixedradix: increment wrapped")
	return 1
}

// AddWrapping adds amount to the counter modulo its capacity
// It returns the carry out of the most significant digit, which is 0 when nothing overflowed.
func (c *Counter[T]) AddWrapping(amount T) (carry T) {
	if carry = addInto(c.values, c.limits, amount); carry != 0 {
		c.logger().Debugf("mixedradix: adding %d wrapped with carry %d", amount, carry)
	}
	return
}
