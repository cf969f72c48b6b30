package akka

// worker runs thunks for the Executor. Workers are pooled and reused; they
// hold no state between thunks.
type worker struct{}

func newWorker() interface{} { return &worker{} }

// execute runs the thunk and returns the recovered value of a panic, if
// any. Futures submitted through Submit never panic here (their wrapper
// folds panics into the outcome); this guard covers raw Submit thunks.
func (w *worker) execute(thunk func()) (recovered any) {
	defer func() {
		recovered = recover()
	}()
	thunk()
	return nil
}
