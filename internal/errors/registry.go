package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Render Errors (E100-E109)
	// ============================================

	"E100": {
		Category: CategoryRender,
		Message:  "Render failed",
	},
	"E101": {
		Category: CategoryRender,
		Message:  "Unknown operation",
	},
	"E102": {
		Category: CategoryAttribute,
		Message:  "Malformed attribute",
	},
	"E103": {
		Category: CategoryRender,
		Message:  "Void element cannot have content",
	},
	"E104": {
		Category: CategoryInternal,
		Message:  "Buffer stack misuse",
		Detail:   "A capture buffer was popped out of order. This is a bug in the render engine.",
	},
	"E105": {
		Category: CategoryRender,
		Message:  "Unsupported element argument",
	},
	"E106": {
		Category: CategoryRender,
		Message:  "Element content given twice",
	},
	"E107": {
		Category: CategoryRender,
		Message:  "Nested content failed",
	},

	// ============================================
	// Page Errors (E110-E119)
	// ============================================

	"E110": {
		Category: CategoryPage,
		Message:  "Page is not valid JSON",
	},
	"E111": {
		Category: CategoryPage,
		Message:  "Invalid page node",
	},
	"E112": {
		Category: CategoryPage,
		Message:  "Page not found",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid markup.json",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Missing required configuration",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port number",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid command arguments",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Not a markup project",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Unknown project template",
	},
	"E143": {
		Category: CategoryCLI,
		Message:  "Project already exists",
	},

	// ============================================
	// Publish Errors (E150-E159)
	// ============================================

	"E150": {
		Category: CategoryPublish,
		Message:  "Publish failed",
	},
	"E151": {
		Category: CategoryPublish,
		Message:  "Invalid publish target",
	},
}

// Register adds a custom error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
