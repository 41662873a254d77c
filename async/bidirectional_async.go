package async

import "context"

type asyncPair[Req, Resp any] struct {
	req     Req
	replyTx *AsyncSender[Resp]
}

// BidirectionalAsyncRequester issues a request and awaits its reply on a
// fresh one-shot pipe created per call.
type BidirectionalAsyncRequester[Req, Resp any] struct {
	tx *AsyncSender[asyncPair[Req, Resp]]
}

// BidirectionalAsyncResponder pops (request, reply-pipe) pairs and
// answers through whichever pipe came with the request it served.
type BidirectionalAsyncResponder[Req, Resp any] struct {
	rx *AsyncReceiver[asyncPair[Req, Resp]]
}

// NewUnboundedBidirectionalAsync returns a requester/responder pair
// sharing one async FIFO of (request, reply-pipe) pairs.
func NewUnboundedBidirectionalAsync[Req, Resp any]() (*BidirectionalAsyncRequester[Req, Resp], *BidirectionalAsyncResponder[Req, Resp]) {
	tx, rx := NewUnboundedAsync[asyncPair[Req, Resp]]()
	return &BidirectionalAsyncRequester[Req, Resp]{tx: tx}, &BidirectionalAsyncResponder[Req, Resp]{rx: rx}
}

// Call submits req and blocks until the responder replies or ctx is done.
func (r *BidirectionalAsyncRequester[Req, Resp]) Call(ctx context.Context, req Req) (Resp, error) {
	replyTx, replyRx := NewUnboundedAsync[Resp]()
	r.tx.Send(asyncPair[Req, Resp]{req: req, replyTx: replyTx})
	return replyRx.Recv(ctx)
}

// Serve waits for the next request and answers it with handle's result.
func (r *BidirectionalAsyncResponder[Req, Resp]) Serve(ctx context.Context, handle func(Req) Resp) error {
	pair, err := r.rx.Recv(ctx)
	if err != nil {
		return err
	}
	pair.replyTx.Send(handle(pair.req))
	return nil
}
