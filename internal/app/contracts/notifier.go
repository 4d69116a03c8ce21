package contracts

type Notifier interface {
	Notify(level, message string)
}
