package iterator

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted
// or Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once:
//
//	var once sync.Once
//	co := CoIterate[T](...)
//	for i := 0; i < 10; i++ {
//		go func() {
//			for item := range co.Items() {
//				if item meets some stopping condition {
//					once.Do(co.Stop)
//				}
//			}
//		}()
//	}
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](someTree.InOrderIterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
//
// The goroutine reads the tree while the caller runs, so the tree
// must not be mutated until the Items channel is closed.
func CoIterate[T any](it Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if it == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, it Iterator[T]) {
		defer close(out)
		for it.Next() {
			select {
			case out <- it.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, it)

	return co
}
