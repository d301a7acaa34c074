package handlers

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Wizard  *WizardHandler
	Branch  *BranchHandler
	Storage *StorageHandler
}
