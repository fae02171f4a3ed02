package page

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/five82/welcome/internal/catalog"
	"github.com/five82/welcome/internal/manifest"
	"github.com/five82/welcome/internal/markup"
)

// Container ids the host page provides.
const (
	ServicesContainerID   = "services-container"
	QuickStartContainerID = "quickstart-container"
	CommandsContainerID   = "commands-container"
	DomainInfoID          = "domain-info"
	ErrorToastID          = "error-toast"
	ErrorMessageID        = "error-message"
)

// Fixed user-facing texts.
const (
	NoServicesMessage  = "No services configured. Run the installer to set up services."
	ErrorPanelTitle    = "Unable to load service data"
	ErrorPanelDetail   = "Make sure the installation completed successfully and data.json was generated."
	ErrorToastMessage  = "Could not load service data. Showing default steps."
	sectionIconClasses = "w-5 h-5 text-brand"
)

// RenderServices replaces the container's children with one card per service.
// A nil container is a no-op.
func RenderServices(container *html.Node, rc *RenderContext, services map[string]manifest.ServiceInstance) int {
	if container == nil {
		return 0
	}
	clearChildren(container)
	if len(services) == 0 {
		placeholder := element("div", "services-empty col-span-full text-center py-12 text-gray-500")
		placeholder.AppendChild(withText(element("p", ""), NoServicesMessage))
		container.AppendChild(placeholder)
		return 0
	}
	if rc == nil {
		rc = NewRenderContext()
	}
	keys := SortedKeys(services)
	for _, key := range keys {
		container.AppendChild(RenderCard(rc, key, services[key]))
	}
	return len(keys)
}

// RenderServicesError replaces the container's children with the warning
// panel.
func RenderServicesError(container *html.Node) {
	if container == nil {
		return
	}
	clearChildren(container)
	panel := element("div", "services-error col-span-full bg-red-900/20 border border-red-800/50 rounded-xl p-6 text-center",
		"role", "alert")
	appendChildren(panel,
		markup.IconNode("warning", "w-12 h-12 mx-auto text-red-500 mb-4"),
		withText(element("h3", "font-semibold text-red-400 mb-2"), ErrorPanelTitle),
		withText(element("p", "text-sm text-red-300/80"), ErrorPanelDetail),
	)
	container.AppendChild(panel)
}

// RenderQuickStart replaces the container's children with the steps, falling
// back to the defaults when steps is empty.
func RenderQuickStart(container *html.Node, steps []manifest.QuickStartStep) int {
	if container == nil {
		return 0
	}
	clearChildren(container)
	list := QuickStart(steps)
	for _, s := range list {
		item := element("div", "quickstart-step flex items-start gap-4 p-4 bg-surface-100 rounded-xl border border-surface-400 hover-glow")
		number := element("div", "w-8 h-8 rounded-full bg-brand/20 border border-brand/30 text-brand flex items-center justify-center font-semibold text-sm flex-shrink-0")
		withText(number, strconv.Itoa(s.Step))
		body := element("div", "")
		appendChildren(body,
			withText(element("h4", "font-semibold text-white"), s.Title),
			withText(element("p", "text-sm text-gray-500"), s.Description),
		)
		appendChildren(item, number, body)
		container.AppendChild(item)
	}
	return len(list)
}

// RenderCommands replaces the container's children with the cheat-sheet grid.
func RenderCommands(container *html.Node, commands []catalog.Command) {
	if container == nil {
		return
	}
	clearChildren(container)
	grid := element("div", "grid gap-4 sm:grid-cols-2 lg:grid-cols-3")
	for _, c := range commands {
		entry := element("div", "command-entry flex items-start gap-3 p-3 rounded-lg bg-surface-200/50 border border-surface-400 hover:border-brand/30 transition-all")
		content := element("div", "flex flex-col gap-1 flex-1 min-w-0")
		appendChildren(content,
			withText(element("code", "text-brand font-mono text-sm"), c.Cmd),
			withText(element("span", "text-gray-500 text-xs"), c.Desc),
		)
		btn := copyButton(c.Cmd)
		setAttr(btn, "class", buttonClass+" flex-shrink-0")
		appendChildren(entry, content, btn)
		grid.AppendChild(entry)
	}
	container.AppendChild(grid)
}

// SetBanner replaces the slot's text. An empty banner leaves the slot as the
// host page shipped it.
func SetBanner(slot *html.Node, banner string) {
	if slot == nil || banner == "" {
		return
	}
	clearChildren(slot)
	withText(slot, banner)
}

// ShowErrorToast sets the toast message and un-hides the toast. Both elements
// must be present.
func ShowErrorToast(toast, message *html.Node, text string) {
	if toast == nil || message == nil {
		return
	}
	clearChildren(message)
	withText(message, text)
	removeClass(toast, "hidden")
}

// InjectSectionIcons fills every element carrying data-section-icon with the
// named icon. Unknown names are left alone.
func InjectSectionIcons(root *html.Node) {
	if root == nil {
		return
	}
	for _, n := range findAll(root, func(n *html.Node) bool {
		_, ok := attr(n, "data-section-icon")
		return ok
	}) {
		name, _ := attr(n, "data-section-icon")
		icon := markup.IconNode(name, sectionIconClasses)
		if icon == nil {
			continue
		}
		clearChildren(n)
		n.AppendChild(icon)
	}
}
