package gui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"codeberg.org/arvoss/wordlens/internal"
	"codeberg.org/arvoss/wordlens/internal/collection"
	"codeberg.org/arvoss/wordlens/internal/gateway"
	"codeberg.org/arvoss/wordlens/internal/language"
	"codeberg.org/arvoss/wordlens/internal/session"
	"codeberg.org/arvoss/wordlens/internal/speech"
)

// Application represents the main GUI application
type Application struct {
	// Fyne components
	app    fyne.App
	window fyne.Window
	tabs   *container.AppTabs

	// Search view elements
	searchInput       *widget.Entry
	searchButton      *ttwidget.Button
	explanationSelect *widget.Select
	nativeSelect      *widget.Select
	definitionView    *widget.RichText
	meaningsView      *widget.RichText
	imageDisplay      *ImageDisplay
	galleryLabel      *widget.Label

	// Search action buttons
	prevImageBtn *ttwidget.Button
	nextImageBtn *ttwidget.Button
	variationBtn *ttwidget.Button
	likeBtn      *ttwidget.Button
	dislikeBtn   *ttwidget.Button
	saveBtn      *ttwidget.Button
	speakBtn     *ttwidget.Button
	meaningsBtn  *ttwidget.Button
	chatBtn      *ttwidget.Button

	// Chat dialog elements, rebuilt each time the dialog opens
	chatView  *widget.RichText
	chatEntry *widget.Entry

	// Wordbook view elements
	savedList       *widget.List
	savedCountLabel *widget.Label
	itemDetailView  *widget.RichText
	storyButton     *ttwidget.Button
	storyView       *StoryView

	statusLabel *widget.Label

	// Domain state. Session commits happen on the Fyne main thread only;
	// the token identifies the search cycle an in-flight request belongs to.
	session    *session.Session
	store      *collection.Store
	gw         *gateway.Client
	synth      speech.Provider
	player     *AudioPlayer
	token      session.Token
	savedItems []collection.SavedItem

	explanationLang language.Language
	nativeLang      language.Language

	// Per-operation loading flags
	definitionLoading bool
	imageLoading      bool
	meaningsLoading   bool
	chatPending       bool
	storyPending      bool
	speaking          bool

	// Background processing
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// Config holds GUI application configuration
type Config struct {
	ExplanationLanguage string // language code, e.g. "en"
	NativeLanguage      string
}

// New creates a new GUI application. The gateway, speech provider and
// collection store are owned by the caller; the store in particular
// outlives the window and is closed by the caller.
func New(config *Config, gw *gateway.Client, synth speech.Provider, store *collection.Store) *Application {
	if config == nil {
		config = &Config{}
	}

	explanationLang, ok := language.ByCode(config.ExplanationLanguage)
	if !ok {
		explanationLang = language.Default()
	}
	nativeLang, ok := language.ByCode(config.NativeLanguage)
	if !ok {
		nativeLang = language.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	a := &Application{
		app:             app.NewWithID("org.codeberg.arvoss.wordlens"),
		session:         session.New(),
		store:           store,
		gw:              gw,
		synth:           synth,
		player:          NewAudioPlayer(),
		explanationLang: explanationLang,
		nativeLang:      nativeLang,
		ctx:             ctx,
		cancel:          cancel,
	}

	a.setupUI()
	a.refreshWordbook()

	return a
}

// setupUI creates the main user interface
func (a *Application) setupUI() {
	a.window = a.app.NewWindow(fmt.Sprintf("WordLens v%s - AI Vocabulary Explorer", internal.Version))
	a.window.Resize(fyne.NewSize(960, 720))

	a.tabs = container.NewAppTabs(
		container.NewTabItem("Search", a.makeSearchView()),
		container.NewTabItem("Wordbook", a.makeWordbookView()),
	)
	a.tabs.OnSelected = func(*container.TabItem) {
		// Switching views resets nothing, but the wordbook list may be
		// stale after saves made from the search view.
		a.refreshWordbook()
	}

	a.statusLabel = widget.NewLabel("Ready")

	content := container.NewBorder(
		nil,
		container.NewVBox(widget.NewSeparator(), a.statusLabel),
		nil, nil,
		a.tabs,
	)

	// Add the tooltip layer to enable tooltips
	a.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas()))

	// Now that tooltip layer is created, set all tooltips
	a.setupTooltips()

	a.window.SetOnClosed(func() {
		a.cancel()
		a.player.Stop()
		a.wg.Wait()
	})
}

// Run starts the GUI application
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// setupTooltips sets up all tooltips after the tooltip layer has been created
func (a *Application) setupTooltips() {
	a.searchButton.SetToolTip("Look up word")
	a.prevImageBtn.SetToolTip("Previous image")
	a.nextImageBtn.SetToolTip("Next image")
	a.variationBtn.SetToolTip("Generate image variation")
	a.likeBtn.SetToolTip("Like this image")
	a.dislikeBtn.SetToolTip("Dislike this image")
	a.saveBtn.SetToolTip("Save to wordbook")
	a.speakBtn.SetToolTip("Pronounce word")
	a.meaningsBtn.SetToolTip("Reveal hidden meanings")
	a.chatBtn.SetToolTip("Chat about this word")
	a.storyButton.SetToolTip("Compose a practice story from saved words")
}

func (a *Application) updateStatus(message string) {
	a.statusLabel.SetText(message)
}

func (a *Application) showError(err error) {
	dialog.ShowError(err, a.window)
	a.updateStatus("Error: " + err.Error())
}
