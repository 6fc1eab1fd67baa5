package assistant

import "context"

// Disabled is used when no API key is configured. Every call fails with
// KindAuth so the bot asks the operator to connect a key.
type Disabled struct{}

func (Disabled) Chat(context.Context, string, string, string) (string, error) {
	return "", &Failure{Kind: KindAuth, Op: "chat", Err: errDisabled}
}

func (Disabled) ExtractExpense(context.Context, []byte, string) (ExpenseDraft, error) {
	return ExpenseDraft{}, &Failure{Kind: KindAuth, Op: "expense", Err: errDisabled}
}

func (Disabled) ExtractIncome(context.Context, []byte, string) (IncomeDraft, error) {
	return IncomeDraft{}, &Failure{Kind: KindAuth, Op: "income", Err: errDisabled}
}

func (Disabled) GenerateImage(context.Context, string, ImageOptions) (Image, error) {
	return Image{}, &Failure{Kind: KindAuth, Op: "image", Err: errDisabled}
}

func (Disabled) EditImage(context.Context, []byte, string, string) (Image, error) {
	return Image{}, &Failure{Kind: KindAuth, Op: "edit", Err: errDisabled}
}
