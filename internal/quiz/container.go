package quiz

type QuizContainer struct {
	Handler *Handler
	Service QuizService
}

func NewQuizContainer(repo QuizRepository) *QuizContainer {
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
