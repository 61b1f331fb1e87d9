//go:build webkit_cgo

package webkit

/*
#cgo pkg-config: webkitgtk-6.0 gtk4 javascriptcoregtk-6.0
#include <stdlib.h>
#include <gtk/gtk.h>
#include <webkit/webkit.h>
#include <jsc/jsc.h>

extern void wuiOnScriptMessage(unsigned long id, const char* msg);

static void wui_on_script_message(WebKitUserContentManager* ucm, JSCValue* val, gpointer user_data) {
    (void)ucm;
    if (!val) return;
    gchar* s = jsc_value_to_string(val);
    if (!s) return;
    wuiOnScriptMessage((unsigned long)user_data, s);
    g_free(s);
}

// Creates a webview whose user content manager carries the init script and
// the IPC handler, both bound to world.
static WebKitWebView* wui_new_webview(const char* init_script, const char* handler, const char* world, unsigned long id) {
    WebKitUserContentManager* ucm = webkit_user_content_manager_new();
    if (!ucm) return NULL;

    webkit_user_content_manager_register_script_message_handler(ucm, handler, world);
    gchar* signal = g_strdup_printf("script-message-received::%s", handler);
    g_signal_connect_data(G_OBJECT(ucm), signal, G_CALLBACK(wui_on_script_message), (gpointer)id, NULL, 0);
    g_free(signal);

    WebKitUserScript* script = webkit_user_script_new_for_world(
        init_script,
        WEBKIT_USER_CONTENT_INJECT_TOP_FRAME,
        WEBKIT_USER_SCRIPT_INJECT_AT_DOCUMENT_START,
        world,
        NULL,
        NULL);
    webkit_user_content_manager_add_script(ucm, script);
    webkit_user_script_unref(script);

    WebKitWebView* wv = WEBKIT_WEB_VIEW(g_object_new(WEBKIT_TYPE_WEB_VIEW,
        "user-content-manager", ucm,
        NULL));
    g_object_unref(ucm);
    return wv;
}

static void wui_configure(WebKitWebView* wv, int transparent, int devtools) {
    WebKitSettings* settings = webkit_web_view_get_settings(wv);
    webkit_settings_set_enable_developer_extras(settings, devtools ? TRUE : FALSE);
    if (transparent) {
        GdkRGBA clear = {0.0, 0.0, 0.0, 0.0};
        webkit_web_view_set_background_color(wv, &clear);
    }
}

static GtkWindow* wui_new_toplevel(int width, int height) {
    GtkWindow* win = GTK_WINDOW(gtk_window_new());
    if (width > 0 && height > 0) {
        gtk_window_set_default_size(win, width, height);
    }
    return win;
}

static void wui_attach(GtkWindow* win, WebKitWebView* wv, int focused) {
    gtk_window_set_child(win, GTK_WIDGET(wv));
    gtk_window_present(win);
    if (focused) {
        gtk_widget_grab_focus(GTK_WIDGET(wv));
    }
}

static void wui_detach(GtkWindow* win, int owned) {
    if (!win) return;
    if (owned) {
        gtk_window_destroy(win);
    } else {
        gtk_window_set_child(win, NULL);
    }
}

static void wui_evaluate(WebKitWebView* wv, const char* js, const char* world) {
    webkit_web_view_evaluate_javascript(wv, js, -1, world, NULL, NULL, NULL, NULL);
}

static void wui_pump(void) {
    while (g_main_context_iteration(NULL, FALSE)) {}
}
*/
import "C"

import (
	"errors"
	"unsafe"

	"github.com/bnema/wui/internal/application/port"
)

const nativeAvailable = true

type nativeView struct {
	wv     *C.WebKitWebView
	window *C.GtkWindow
	owned  bool
}

func nativeInit() error {
	C.gtk_init()
	return nil
}

func nativePump() {
	C.wui_pump()
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func nativeBuild(v *View, window port.WindowHandle, opts port.BuildOptions) error {
	cscript := C.CString(ipcShim + opts.InitScript)
	defer C.free(unsafe.Pointer(cscript))
	chandler := C.CString(ipcHandlerName)
	defer C.free(unsafe.Pointer(chandler))
	cworld := C.CString(ScriptWorld)
	defer C.free(unsafe.Pointer(cworld))

	wv := C.wui_new_webview(cscript, chandler, cworld, C.ulong(v.id))
	if wv == nil {
		return errors.New("webkit_web_view creation failed")
	}
	C.wui_configure(wv, cbool(opts.Transparent), cbool(opts.DevTools))

	win := (*C.GtkWindow)(window.Pointer)
	owned := false
	if win == nil {
		win = C.wui_new_toplevel(C.int(window.Width), C.int(window.Height))
		owned = true
	}
	C.wui_attach(win, wv, cbool(opts.Focused))
	v.native = nativeView{wv: wv, window: win, owned: owned}

	if opts.URL != "" {
		curl := C.CString(opts.URL)
		defer C.free(unsafe.Pointer(curl))
		C.webkit_web_view_load_uri(wv, (*C.gchar)(curl))
	} else {
		chtml := C.CString(opts.HTML)
		defer C.free(unsafe.Pointer(chtml))
		C.webkit_web_view_load_html(wv, (*C.gchar)(chtml), nil)
	}
	return nil
}

func nativeEvaluate(v *View, script string) error {
	if v.native.wv == nil {
		return port.ErrWebViewClosed
	}
	cjs := C.CString(script)
	defer C.free(unsafe.Pointer(cjs))
	cworld := C.CString(ScriptWorld)
	defer C.free(unsafe.Pointer(cworld))
	C.wui_evaluate(v.native.wv, cjs, cworld)
	return nil
}

func nativeDestroy(v *View) {
	C.wui_detach(v.native.window, cbool(v.native.owned))
	v.native = nativeView{}
}
