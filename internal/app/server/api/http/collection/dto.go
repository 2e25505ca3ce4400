package collection

type idPath struct {
	ID string `path:"id"`
}

type createInput[In any] struct {
	Body In
}

type updateInput[In any] struct {
	ID   string `path:"id"`
	Body In
}

type itemOutput[Out any] struct {
	Body Out
}

type listOutput[Out any] struct {
	Body []Out
}
