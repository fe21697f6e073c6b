package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

type antidosBucket struct {
	ticker  *time.Ticker
	tickets chan struct{}
}

// antidos spaces out requests per client bucket and, when maxConcurrent is
// set, rejects clients that already have that many requests in flight.
type antidos struct {
	buckets         []antidosBucket
	tooManyRequests http.Handler
}

func newAntidos(buckets int, period time.Duration, maxConcurrent int, tooManyRequests http.Handler) *antidos {
	b := make([]antidosBucket, buckets)
	for i := range buckets {
		b[i].ticker = time.NewTicker(period)
		if maxConcurrent > 0 {
			b[i].tickets = make(chan struct{}, maxConcurrent)
		}
	}

	return &antidos{
		buckets:         b,
		tooManyRequests: tooManyRequests,
	}
}

func (a *antidos) bucket(r *http.Request) *antidosBucket {
	var bucket int
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		h := fnv.New64()
		io.WriteString(h, host)
		bucket = int(h.Sum64() % uint64(len(a.buckets)))
	}
	return &a.buckets[bucket]
}

func (a *antidos) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := a.bucket(r)

		if b.tickets == nil {
			<-b.ticker.C
			next.ServeHTTP(w, r)
			return
		}

		select {
		case b.tickets <- struct{}{}:
			defer func() { <-b.tickets }()
			<-b.ticker.C
			next.ServeHTTP(w, r)

		default:
			a.tooManyRequests.ServeHTTP(w, r)
		}
	})
}

func (a *antidos) stop() {
	for _, b := range a.buckets {
		b.ticker.Stop()
	}
}
