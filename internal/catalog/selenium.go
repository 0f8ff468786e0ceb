package catalog

// seleniumDescriptor covers the browser-automation wrapper: navigation
// and element interaction.
func seleniumDescriptor() Descriptor {
	return Descriptor{
		Name:        "SeleniumModule",
		Description: "Automate a web browser: navigate pages, click elements, and type into fields",
		Keywords:    []string{"browser", "selenium", "navigate", "click", "type", "element", "page"},
		Methods: []Method{
			{
				Name:        "navigate",
				Description: "Navigate the browser to a URL",
				Parameters: map[string]string{
					"url": "The URL to navigate to",
				},
				Returns: "True if successful",
				Examples: []Example{
					{Text: "navigate to {{url}}", Code: "navigate(url='{{url}}')"},
					{Text: "open page {{url}} in the browser", Code: "navigate(url='{{url}}')"},
				},
			},
			{
				Name:        "click",
				Description: "Click an element located by CSS selector or other strategy",
				Parameters: map[string]string{
					"locator": "Element locator",
					"by":      "Locator strategy: css, xpath, id, name (optional, default css)",
				},
				Returns: "True if successful",
				Examples: []Example{
					{Text: "click element {{locator}}", Code: "click(locator='{{locator}}')"},
					{Text: "click element {{locator}} using {{by}}", Code: "click(locator='{{locator}}', by='{{by}}')"},
				},
			},
			{
				Name:        "type_text",
				Description: "Type text into an input field, clearing existing text first",
				Parameters: map[string]string{
					"text":    "Text to type",
					"locator": "Element locator for the input field",
				},
				Returns: "True if successful",
				Examples: []Example{
					{Text: "type {{text}} into field {{locator}}", Code: "type_text(locator='{{locator}}', text='{{text}}')"},
				},
			},
		},
	}
}
