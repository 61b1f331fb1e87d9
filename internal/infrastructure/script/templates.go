package script

// bootstrapTemplate runs before any content script.
//
// The instance token only lives inside the closure. post() is the single
// entry point to the native IPC channel: window.ipc is captured and deleted.
// Only guards created here are honoured, and the globals exposing them are
// read-only. The host re-applies the context menu policy through
// __wuiApplyContextMenu.
const bootstrapTemplate = `(function () {
  "use strict";

  const token = {{.Token}};
  const systemEvents = ["kd", "ku", "md", "mu", "mm"];
  const ipc = window.ipc;
  try { delete window.ipc; } catch (_) {}

  function post(name, data, presented) {
    name = String(name);

    // the host splits on the first \u0001, a name must never contain it
    if (name.indexOf("\u0001") !== -1) {
      console.error("Event name cannot contain the '\\u0001' character.");
      return false;
    }

    // system events are reserved for this script
    if (systemEvents.indexOf(name) !== -1 && presented !== token) {
      console.error("You have no permission to post this event.");
      return false;
    }

    ipc.postMessage(name + "\u0001" + JSON.stringify(data === undefined ? null : data));
    return true;
  }

  const store = new WeakMap();
  const guards = new WeakSet();

  class Protect {
    constructor(value) {
      store.set(this, value);
      guards.add(this);
      Object.freeze(this);
    }

    get(presented) {
      if (this.check(presented)) return store.get(this);
    }

    set(presented, value) {
      if (this.check(presented)) store.set(this, value);
    }

    check(presented) {
      if (presented === token) return true;
      console.error("You have no permission to access this property.");
      return false;
    }
  }

  delete Protect.prototype.constructor;
  Object.freeze(Protect.prototype);

  // reads the slot directly, content cannot intercept it through get()
  function read(guard) {
    return guards.has(guard) ? store.get(guard) : undefined;
  }

  const menuEnabled = new Protect({{.Enabled}});
  const menuKey     = new Protect({{.Key}});
  const pressing    = new Protect(new Set());

  function applyContextMenu(enabled, key) {
    store.set(menuEnabled, enabled === true);
    store.set(menuKey, key === undefined ? null : key);
  }

  function expose(name, value) {
    Object.defineProperty(window, name, { value: value, writable: false, configurable: false, enumerable: false });
  }
  expose("__wuiContextMenuEnabled", menuEnabled);
  expose("__wuiContextMenuKey", menuKey);
  expose("__wuiApplyContextMenu", applyContextMenu);

  window.addEventListener("keydown", function (e) { read(pressing).add(e.code); });
  window.addEventListener("keyup",   function (e) { read(pressing).delete(e.code); });

  window.addEventListener("contextmenu", function (e) {
    const held      = read(pressing);
    const enabled   = read(menuEnabled) === true;
    const key       = read(menuKey);
    const activated = key === null || key === undefined || held.has(key);
    if (!enabled || !activated) {
      e.preventDefault();
    } else {
      held.clear();
    }
  });

  window.addEventListener("keydown",   function (e) { post("kd", { key: e.key, code: e.code }, token); });
  window.addEventListener("keyup",     function (e) { post("ku", { key: e.key, code: e.code }, token); });
  window.addEventListener("mousedown", function (e) { post("md", { button: e.button }, token); });
  window.addEventListener("mouseup",   function (e) { post("mu", { button: e.button }, token); });
  window.addEventListener("mousemove", function (e) { post("mm", { relX: e.movementX, relY: e.movementY }, token); });

  window.post = post;
})();
`

// contextMenuUpdateTemplate is evaluated host-side on a live instance, in
// the world the bootstrap script was injected into.
const contextMenuUpdateTemplate = `__wuiApplyContextMenu({{.Enabled}}, {{.Key}});
`
