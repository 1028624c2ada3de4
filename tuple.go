package rx

type (
	// Tuple2 is a row produced by CombineLatest2 or WithLatestFrom2
	Tuple2[A, B any] struct {
		First  A
		Second B
	}

	// Tuple3 is a row produced by CombineLatest3 or WithLatestFrom3
	Tuple3[A, B, C any] struct {
		First  A
		Second B
		Third  C
	}
)

// CombineLatest2 is CombineLatest for a source and one other input of a
// different type
func CombineLatest2[A, B any](b Observable[B]) Operator[A, Tuple2[A, B]] {
	return func(src Stream[A]) Stream[Tuple2[A, B]] {
		return Pipe2[any, []any, Tuple2[A, B]](
			erase[A](src), CombineLatest[any](erase[B](b)), toTuple2[A, B],
		)
	}
}

// CombineLatest3 is CombineLatest for a source and two other inputs of
// different types
func CombineLatest3[A, B, C any](
	b Observable[B], c Observable[C],
) Operator[A, Tuple3[A, B, C]] {
	return func(src Stream[A]) Stream[Tuple3[A, B, C]] {
		return Pipe2[any, []any, Tuple3[A, B, C]](
			erase[A](src),
			CombineLatest[any](erase[B](b), erase[C](c)),
			toTuple3[A, B, C],
		)
	}
}

// WithLatestFrom2 is WithLatestFrom for one other input of a different
// type
func WithLatestFrom2[A, B any](b Observable[B]) Operator[A, Tuple2[A, B]] {
	return func(src Stream[A]) Stream[Tuple2[A, B]] {
		return Pipe2[any, []any, Tuple2[A, B]](
			erase[A](src), WithLatestFrom[any](erase[B](b)), toTuple2[A, B],
		)
	}
}

// WithLatestFrom3 is WithLatestFrom for two other inputs of different
// types
func WithLatestFrom3[A, B, C any](
	b Observable[B], c Observable[C],
) Operator[A, Tuple3[A, B, C]] {
	return func(src Stream[A]) Stream[Tuple3[A, B, C]] {
		return Pipe2[any, []any, Tuple3[A, B, C]](
			erase[A](src),
			WithLatestFrom[any](erase[B](b), erase[C](c)),
			toTuple3[A, B, C],
		)
	}
}

func toTuple2[A, B any](rows Stream[[]any]) Stream[Tuple2[A, B]] {
	return Map(func(row []any) Tuple2[A, B] {
		return Tuple2[A, B]{
			First:  slot[A](row[0]),
			Second: slot[B](row[1]),
		}
	})(rows)
}

func toTuple3[A, B, C any](rows Stream[[]any]) Stream[Tuple3[A, B, C]] {
	return Map(func(row []any) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{
			First:  slot[A](row[0]),
			Second: slot[B](row[1]),
			Third:  slot[C](row[2]),
		}
	})(rows)
}

func erase[T any](o Observable[T]) Stream[any] {
	return Map(func(v T) any { return v })(AsStream(o))
}

func slot[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
