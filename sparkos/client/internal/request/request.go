// Package request runs the peek round trip shared by the sensor clients.
package request

import (
	"sync/atomic"

	"elitewatch/sparkos/kernel"
	"elitewatch/sparkos/proto"

	"github.com/pkg/errors"
)

const retryLimit = 8

// ErrTimeout is returned when no matching reply arrives in time.
var ErrTimeout = errors.New("request timed out")

// Peeker numbers the peek requests for one service. Replies come back on the
// calling context's reply endpoint, so a Peeker holds no kernel state and may
// be shared across kernels.
type Peeker struct {
	name   string
	nextID atomic.Uint32
}

func NewPeeker(name string) *Peeker {
	return &Peeker{name: name}
}

// Peek sends a peek request of kind and waits up to timeout ticks for a reply
// of kind want whose request ID matches. Replies to earlier requests are
// dropped. decode returns the request ID of a reply payload.
func (p *Peeker) Peek(
	ctx *kernel.Context,
	to kernel.Capability,
	kind, want proto.Kind,
	timeout uint64,
	decode func(payload []byte) (uint32, bool),
) ([]byte, error) {
	if ctx == nil {
		return nil, errors.Errorf("%s peek: nil context", p.name)
	}
	reply := ctx.ReplyEndpoint()
	if !reply.Valid() {
		return nil, errors.Errorf("%s peek: allocate reply endpoint", p.name)
	}

	id := p.nextID.Add(1)
	if id == 0 {
		id = p.nextID.Add(1)
	}

	res := ctx.SendToCapRetry(to, uint16(kind), proto.PeekPayload(id), reply.Restrict(kernel.RightSend), retryLimit)
	if res != kernel.SendOK {
		return nil, errors.Errorf("%s peek send: %s", p.name, res)
	}

	recv := reply.Restrict(kernel.RightRecv)
	start := ctx.NowTick()
	for {
		spent := ctx.NowTick() - start
		if spent > timeout {
			return nil, errors.Wrapf(ErrTimeout, "%s peek", p.name)
		}
		msg, r := ctx.RecvWithin(recv, timeout-spent)
		switch r {
		case kernel.RecvTimeout:
			return nil, errors.Wrapf(ErrTimeout, "%s peek", p.name)
		case kernel.RecvClosed:
			return nil, errors.Errorf("%s peek: reply endpoint closed", p.name)
		}

		switch proto.Kind(msg.Kind) {
		case want:
			got, ok := decode(msg.Payload())
			if !ok {
				return nil, errors.Errorf("%s peek: bad payload", p.name)
			}
			if got != id {
				continue
			}
			return msg.Payload(), nil
		case proto.MsgError:
			e, ok := proto.DecodeErrorPayload(msg.Payload())
			if !ok || e.Ref != kind {
				continue
			}
			return nil, errors.Wrapf(e, "%s peek", p.name)
		}
	}
}
