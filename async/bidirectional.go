package async

import "sync"

type reqEnvelope[Req any] struct {
	token int64
	val   Req
}

type syncCore[Req, Resp any] struct {
	mu        sync.Mutex
	reqs      []reqEnvelope[Req]
	resps     map[int64]Resp
	nextToken int64
}

// Requester is the caching front-end described for the sync
// request/response variant: it records its own outstanding tokens FIFO so
// callers never see them, matching replies to requests strictly in send
// order.
type Requester[Req, Resp any] struct {
	core    *syncCore[Req, Resp]
	pending []int64
}

// Responder pairs TryTakeRequest with ReplyResponse: the token captured
// on take is replied to on the next ReplyResponse call, again hiding it
// from the caller.
type Responder[Req, Resp any] struct {
	core  *syncCore[Req, Resp]
	taken []int64
}

// NewUnboundedBidirectional returns a requester/responder pair sharing
// one request FIFO and token-keyed response map.
func NewUnboundedBidirectional[Req, Resp any]() (*Requester[Req, Resp], *Responder[Req, Resp]) {
	core := &syncCore[Req, Resp]{resps: make(map[int64]Resp)}
	return &Requester[Req, Resp]{core: core}, &Responder[Req, Resp]{core: core}
}

func (r *Requester[Req, Resp]) SendRequest(req Req) {
	r.core.mu.Lock()
	token := r.core.nextToken
	r.core.nextToken++
	r.core.reqs = append(r.core.reqs, reqEnvelope[Req]{token: token, val: req})
	r.core.mu.Unlock()
	r.pending = append(r.pending, token)
}

// TryGetResponse returns the reply to the oldest outstanding request, if
// it has arrived.
func (r *Requester[Req, Resp]) TryGetResponse() (Resp, bool) {
	var zero Resp
	if len(r.pending) == 0 {
		return zero, false
	}
	token := r.pending[0]
	r.core.mu.Lock()
	resp, ok := r.core.resps[token]
	if ok {
		delete(r.core.resps, token)
	}
	r.core.mu.Unlock()
	if !ok {
		return zero, false
	}
	r.pending = r.pending[1:]
	return resp, true
}

// TryTakeRequest pops the oldest pending request, if any.
func (r *Responder[Req, Resp]) TryTakeRequest() (Req, bool) {
	var zero Req
	r.core.mu.Lock()
	defer r.core.mu.Unlock()
	if len(r.core.reqs) == 0 {
		return zero, false
	}
	env := r.core.reqs[0]
	r.core.reqs = r.core.reqs[1:]
	r.taken = append(r.taken, env.token)
	return env.val, true
}

// ReplyResponse answers the oldest request taken but not yet replied to.
// Reports false if there is nothing outstanding to reply to.
func (r *Responder[Req, Resp]) ReplyResponse(resp Resp) bool {
	if len(r.taken) == 0 {
		return false
	}
	token := r.taken[0]
	r.taken = r.taken[1:]
	r.core.mu.Lock()
	r.core.resps[token] = resp
	r.core.mu.Unlock()
	return true
}
