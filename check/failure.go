package check

// Failure is the single error kind produced by a failing check. It carries
// nothing but the fully rendered message; the message is the entire
// diagnostic surface.
type Failure struct {
	msg string
}

// NewFailure wraps an already rendered message. Check implementations raise
// it with panic; Execute is the only place that ever swallows one.
func NewFailure(msg string) *Failure {
	return &Failure{msg: msg}
}

func (f *Failure) Error() string {
	return f.msg
}

// Catch runs a chain and converts a raised check failure into an ordinary
// error return. Panics of any other type pass through untouched.
func Catch(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			err = f
		}
	}()

	fn()

	return nil
}
