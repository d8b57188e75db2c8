package kernel

// Context provides task-local access to kernel operations.
type Context struct {
	k      *Kernel
	taskID TaskID
	reply  Capability
}

// TaskID returns the current task ID.
func (c *Context) TaskID() TaskID { return c.taskID }

// RecvChan returns the inbound message channel for an endpoint capability.
func (c *Context) RecvChan(epCap Capability) (<-chan Message, bool) {
	if !epCap.valid() || !epCap.canRecv() {
		return nil, false
	}
	ch := c.k.recvChan(epCap.ep)
	if ch == nil {
		return nil, false
	}
	return ch, true
}

// Recv reads one message from the capability endpoint, blocking until a message arrives.
func (c *Context) Recv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	msg, ok := <-ch
	return msg, ok
}

// TryRecv reads one message from the capability endpoint without blocking.
func (c *Context) TryRecv(epCap Capability) (Message, bool) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, false
	}
	select {
	case msg, ok := <-ch:
		return msg, ok
	default:
		return Message{}, false
	}
}

// RecvResult describes the outcome of a bounded receive.
type RecvResult uint8

const (
	RecvOK RecvResult = iota
	RecvTimeout
	RecvClosed
)

// RecvWithin reads one message, giving up once the tick counter has advanced
// by more than ticks.
func (c *Context) RecvWithin(epCap Capability, ticks uint64) (Message, RecvResult) {
	ch, ok := c.RecvChan(epCap)
	if !ok {
		return Message{}, RecvClosed
	}
	start := c.k.nowTick()
	for {
		now, wake := c.k.tickSignal()
		if now-start > ticks {
			return Message{}, RecvTimeout
		}
		select {
		case msg, ok := <-ch:
			if !ok {
				return Message{}, RecvClosed
			}
			return msg, RecvOK
		case <-wake:
		}
	}
}

// BlockOnTick blocks the task until the next Kernel.TickTo call.
func (c *Context) BlockOnTick() {
	if c.k == nil {
		return
	}
	c.WaitTick(c.NowTick())
}

// SendTo sends a message to the capability endpoint.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendTo(toCap Capability, kind uint16, payload []byte) bool {
	return c.SendToCapResult(toCap, kind, payload, Capability{}) == SendOK
}

// SendToCapResult sends a message and transfers an optional capability.
//
// The message From field is set to 0 (unknown).
func (c *Context) SendToCapResult(toCap Capability, kind uint16, payload []byte, xfer Capability) SendResult {
	if !toCap.valid() {
		return SendErrInvalidToCap
	}
	if !toCap.canSend() {
		return SendErrToNoSendRight
	}
	return c.k.send(0, toCap.ep, kind, payload, xfer)
}

// SendToCapRetry is SendToCapResult that waits one tick and retries while the
// destination queue is full, at most limit times.
func (c *Context) SendToCapRetry(toCap Capability, kind uint16, payload []byte, xfer Capability, limit int) SendResult {
	for attempt := 0; ; attempt++ {
		res := c.SendToCapResult(toCap, kind, payload, xfer)
		if res != SendErrQueueFull || attempt >= limit {
			return res
		}
		c.BlockOnTick()
	}
}

// NewEndpoint allocates a new endpoint and returns a capability for it.
func (c *Context) NewEndpoint(rights Rights) Capability {
	if c.k == nil {
		return Capability{}
	}
	return c.k.NewEndpoint(rights)
}

// CloseEndpoint closes an endpoint owned by the task.
func (c *Context) CloseEndpoint(epCap Capability) bool {
	if c.k == nil {
		return false
	}
	return c.k.CloseEndpoint(epCap)
}

// ReplyEndpoint returns an endpoint private to this context for request
// replies, allocating it on first use. It belongs to the context's kernel and
// lives as long as the context.
func (c *Context) ReplyEndpoint() Capability {
	if c.k == nil {
		return Capability{}
	}
	if !c.reply.Valid() {
		c.reply = c.k.NewEndpoint(RightSend | RightRecv)
	}
	return c.reply
}

// NowTick returns the last observed tick value.
func (c *Context) NowTick() uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.nowTick()
}

// WaitTick blocks until tick advances past the provided value and returns the new tick.
func (c *Context) WaitTick(after uint64) uint64 {
	if c.k == nil {
		return 0
	}
	return c.k.waitTick(after)
}

// NewContext returns a context for code running outside any task, such as
// host glue delivering a shutdown request.
func NewContext(k *Kernel) *Context {
	return &Context{k: k, taskID: maxTasks - 1}
}
