package wire

// Sizer runs the first encoding pass. Besides summing sizes it records the
// body length of every length-delimited value that is not a plain string or
// byte run (embedded messages, packed runs, map entries) in the order they
// are visited. The Encoder replays the same lengths in the same order, so no
// nested size is computed twice.
type Sizer struct {
	lengths []int
	err     error
}

// reserve appends a slot for a length that is only known after the body has
// been walked. Slots are taken before recursing so the queue is in pre-order,
// which is the order the Encoder writes prefixes in.
func (s *Sizer) reserve() int {
	s.lengths = append(s.lengths, 0)
	return len(s.lengths) - 1
}

// Delimited records the body length returned by body and returns the size of
// the whole value, length prefix included.
func (s *Sizer) Delimited(body func() int) int {
	i := s.reserve()
	n := body()
	s.lengths[i] = n
	return SizeBytes(n)
}

// Message sizes m as an embedded message, length prefix included. A nil m
// sizes as an empty message.
func (s *Sizer) Message(m Message) int {
	return s.Delimited(func() int {
		if m == nil {
			return 0
		}
		return m.SizeWire(s)
	})
}

// Fail records err. The first error sticks; Marshal reports it.
func (s *Sizer) Fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Err returns the first error recorded during sizing.
func (s *Sizer) Err() error { return s.err }
