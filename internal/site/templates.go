package site

// pageTemplate is the Go html/template for each content page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
  {{if .ThemeHref}}<link rel="stylesheet" href="{{.ThemeHref}}" data-theme-stylesheet>{{end}}
</head>
<body data-page="{{.PagePath}}" data-base="{{.BasePath}}" data-title="{{.BaseTitle}}" data-site-title="{{.SiteTitle}}" data-theme="{{.Theme.Key}}"{{if .Live}} data-live="true"{{end}}>
  <nav class="navbar">
    <div class="container">
      <a class="brand" href="{{.BasePath}}index.html">{{.SiteTitle}}</a>
      <button type="button" class="menu-toggle" aria-expanded="false" aria-label="Open navigation menu" aria-controls="nav-links">
        <span></span><span></span><span></span>
      </button>
      <ul class="nav-links" id="nav-links">
        {{range .Nav}}{{if .Children}}<li class="nav-section{{if .Active}} active{{end}}"><span class="nav-section-title">{{.Title}}</span>
          <ul>{{range .Children}}<li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Title}}</a></li>{{end}}</ul>
        </li>{{else}}<li><a href="{{.Href}}"{{if .Active}} class="active" aria-current="page"{{end}}>{{.Title}}</a></li>{{end}}
        {{end}}
      </ul>
      <div class="search-container">
        <input type="text" id="search-input" class="search-input" placeholder="Search lessons, guides, and concepts..." aria-label="Search tutorials" autocomplete="off"{{if not .Live}} disabled{{end}}>
        <button type="button" class="search-button" aria-label="Search">Search</button>
        <button type="button" class="search-close" aria-label="Close search">&times;</button>
        <div class="search-results" id="search-results" hidden></div>
      </div>
    </div>
  </nav>
  <div class="page">
    {{if .TOC}}<aside class="page-toc">
      <h2>On this page</h2>
      <ul class="toc-links">{{range .TOC}}<li><a href="#{{.ID}}">{{.Title}}</a></li>{{end}}</ul>
    </aside>{{end}}
    <main class="page-content">
      {{.Content}}
    </main>
  </div>
  <div class="stylesheet-switcher collapsed">
    <button type="button" class="switcher-toggle" aria-label="Toggle theme switcher">Themes</button>
    <div class="switcher-content">
      <div class="switcher-header">
        <div>
          <h3 class="switcher-title">CSS Theme Switcher</h3>
          <p class="switcher-subtitle">Change styles without changing HTML!</p>
        </div>
        <button type="button" class="switcher-toggle" aria-label="Close theme switcher">&times;</button>
      </div>
      <div class="theme-options">
        {{range .Themes}}<button type="button" class="theme-button{{if eq .Key $.Theme.Key}} active{{end}}" data-theme="{{.Key}}" data-name="{{.Name}}" data-stylesheet="{{.Stylesheet}}" data-changes="{{range $i, $c := .Changes}}{{if $i}}|{{end}}{{$c}}{{end}}">{{.Name}}</button>{{end}}
      </div>
      <div class="change-indicators">
        <h4>What changed:</h4>
        <ul class="change-list">{{range .Theme.Changes}}<li>{{.}}</li>{{end}}</ul>
      </div>
    </div>
  </div>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the base stylesheet. Themes override its custom properties.
const cssContent = `/* ============ Custom properties ============ */
:root {
  --color-primary: #2563eb;
  --color-primary-dark: #1d4ed8;
  --color-bg: #f8fafc;
  --color-surface: #ffffff;
  --color-text: #1e293b;
  --color-muted: #64748b;
  --color-border: #e2e8f0;
  --font-body: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  --font-heading: var(--font-body);
  --font-mono: "SFMono-Regular", Consolas, "Liberation Mono", monospace;
  --radius: 8px;
  --shadow: 0 1px 3px rgba(15, 23, 42, 0.08);
  --space: 1rem;
}

/* ============ Base ============ */
*, *::before, *::after { box-sizing: border-box; }
html { scroll-behavior: smooth; }
body {
  margin: 0;
  font-family: var(--font-body);
  line-height: 1.6;
  color: var(--color-text);
  background: var(--color-bg);
}
a { color: var(--color-primary); }
a:hover { color: var(--color-primary-dark); }
h1, h2, h3, h4 { font-family: var(--font-heading); line-height: 1.25; }
code { font-family: var(--font-mono); font-size: 0.9em; }
mark { background: #fef08a; padding: 0 2px; border-radius: 2px; }

/* ============ Navigation ============ */
.navbar {
  position: sticky;
  top: 0;
  z-index: 10;
  background: var(--color-surface);
  border-bottom: 1px solid var(--color-border);
  box-shadow: var(--shadow);
}
.navbar .container {
  max-width: 1200px;
  margin: 0 auto;
  padding: 0.75rem var(--space);
  display: flex;
  flex-wrap: wrap;
  align-items: center;
  gap: var(--space);
}
.brand { font-weight: 700; text-decoration: none; color: var(--color-text); }
.menu-toggle {
  display: none;
  flex-direction: column;
  gap: 4px;
  background: none;
  border: 0;
  cursor: pointer;
  padding: 6px;
}
.menu-toggle span { display: block; width: 22px; height: 2px; background: var(--color-text); }
.nav-links { list-style: none; margin: 0; padding: 0; display: flex; gap: var(--space); }
.nav-links a { text-decoration: none; color: var(--color-muted); }
.nav-links a.active, .nav-links a:hover { color: var(--color-primary); }
.nav-section { position: relative; }
.nav-section-title { color: var(--color-muted); cursor: default; }
.nav-section.active > .nav-section-title { color: var(--color-primary); }
.nav-section ul {
  display: none;
  position: absolute;
  top: 100%;
  left: 0;
  min-width: 240px;
  list-style: none;
  margin: 0;
  padding: 0.5rem;
  background: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
}
.nav-section:hover ul, .nav-section:focus-within ul { display: block; }
.nav-section li a { display: block; padding: 0.25rem 0.5rem; }

@media (max-width: 768px) {
  .menu-toggle { display: flex; margin-left: auto; }
  .nav-links { display: none; flex-basis: 100%; flex-direction: column; }
  .nav-links.expanded { display: flex; }
  .nav-section ul { display: block; position: static; border: 0; box-shadow: none; }
}

/* ============ Search ============ */
.search-container { position: relative; margin-left: auto; display: flex; gap: 0.25rem; }
.search-input {
  width: 280px;
  padding: 0.4rem 0.75rem;
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  background: var(--color-bg);
  color: var(--color-text);
}
.search-button, .search-close {
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  background: var(--color-surface);
  color: var(--color-text);
  cursor: pointer;
}
.search-results {
  position: absolute;
  top: calc(100% + 0.5rem);
  right: 0;
  width: min(560px, 90vw);
  max-height: 70vh;
  overflow-y: auto;
  padding: var(--space);
  background: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
}
.search-results-type { font-size: 0.8rem; text-transform: uppercase; color: var(--color-muted); }
.search-result-card { padding: 0.5rem 0; border-bottom: 1px solid var(--color-border); }
.search-result-card h4 { margin: 0; }
.search-result-description { margin: 0.25rem 0; color: var(--color-muted); }
.search-result-url { font-size: 0.75rem; color: var(--color-muted); font-family: var(--font-mono); }

/* ============ Page ============ */
.page {
  max-width: 1200px;
  margin: 0 auto;
  padding: 2rem var(--space);
  display: flex;
  gap: 2rem;
}
.page-content { flex: 1; min-width: 0; }
.page-toc { flex: 0 0 220px; position: sticky; top: 5rem; align-self: flex-start; }
.page-toc h2 { font-size: 0.85rem; text-transform: uppercase; color: var(--color-muted); }
.toc-links { list-style: none; padding: 0; }
.toc-links a { text-decoration: none; color: var(--color-muted); display: block; padding: 0.2rem 0; }
.toc-links a.active { color: var(--color-primary); font-weight: 600; }
@media (max-width: 900px) { .page-toc { display: none; } }

/* ============ Code examples ============ */
.code-example { position: relative; margin: var(--space) 0; }
.code-example pre {
  padding: var(--space);
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  overflow-x: auto;
}
.copy-code-btn {
  position: absolute;
  top: 0.5rem;
  right: 0.5rem;
  padding: 0.25rem 0.6rem;
  font-size: 0.8rem;
  border: 0;
  border-radius: var(--radius);
  background: var(--color-primary);
  color: #fff;
  cursor: pointer;
}
.copy-code-btn.copied { background: #16a34a; }

/* ============ Playground ============ */
.code-playground {
  margin: 1.5rem 0;
  padding: var(--space);
  background: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
}
.playground-controls { display: flex; justify-content: flex-end; gap: 0.5rem; margin-bottom: 0.75rem; }
.playground-btn {
  padding: 0.35rem 0.9rem;
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  background: var(--color-bg);
  color: var(--color-text);
  cursor: pointer;
}
.playground-btn-solution { background: var(--color-primary); color: #fff; border-color: var(--color-primary); }
.playground-editor { display: grid; grid-template-columns: 1fr 1fr; gap: var(--space); }
.editor-label, .preview-label { display: block; font-weight: 600; font-size: 0.85rem; margin-bottom: 0.25rem; }
.code-editor {
  width: 100%;
  min-height: 180px;
  padding: 0.5rem;
  font-family: var(--font-mono);
  font-size: 0.85rem;
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  background: var(--color-bg);
  color: var(--color-text);
  resize: vertical;
}
.playground-preview { margin-top: var(--space); }
.preview-container { border: 1px solid var(--color-border); border-radius: var(--radius); overflow: hidden; }
.preview-iframe { width: 100%; min-height: 220px; border: 0; background: #fff; }
@media (max-width: 768px) { .playground-editor { grid-template-columns: 1fr; } }

/* ============ Theme switcher ============ */
.stylesheet-switcher {
  position: fixed;
  right: 1rem;
  bottom: 1rem;
  z-index: 20;
  background: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  box-shadow: var(--shadow);
}
.stylesheet-switcher.collapsed .switcher-content { display: none; }
.stylesheet-switcher.expanded > .switcher-toggle { display: none; }
.switcher-toggle { border: 0; background: none; cursor: pointer; padding: 0.5rem 0.75rem; color: var(--color-text); }
.switcher-content { padding: var(--space); width: 280px; }
.switcher-header { display: flex; justify-content: space-between; align-items: flex-start; }
.switcher-title { margin: 0; font-size: 1rem; }
.switcher-subtitle { margin: 0.25rem 0 0; font-size: 0.8rem; color: var(--color-muted); }
.theme-options { display: grid; grid-template-columns: 1fr 1fr; gap: 0.5rem; margin: var(--space) 0; }
.theme-button {
  padding: 0.4rem;
  border: 1px solid var(--color-border);
  border-radius: var(--radius);
  background: var(--color-bg);
  color: var(--color-text);
  cursor: pointer;
}
.theme-button.active { border-color: var(--color-primary); color: var(--color-primary); font-weight: 600; }
.change-indicators h4 { margin: 0 0 0.25rem; font-size: 0.85rem; }
.change-list { margin: 0; padding-left: 1.2rem; font-size: 0.8rem; color: var(--color-muted); }
`

// jsContent is the page script. It forwards UI events over the live channel
// and applies what the server sends back; everything else runs locally.
const jsContent = `(function() {
  "use strict";

  var body = document.body;
  var base = body.getAttribute("data-base") || "";

  // ===== Live channel =====
  var socket = null;
  var queue = [];

  function send(msg) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify(msg));
    } else {
      queue.push(msg);
    }
  }

  function connect() {
    var scheme = location.protocol === "https:" ? "wss://" : "ws://";
    socket = new WebSocket(scheme + location.host + "/ws/live");
    socket.addEventListener("open", function() {
      socket.send(JSON.stringify({ type: "hello", page: body.getAttribute("data-page") }));
      while (queue.length) socket.send(JSON.stringify(queue.shift()));
    });
    socket.addEventListener("message", function(e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      var handler = handlers[msg.type];
      if (handler) handler(msg);
    });
    socket.addEventListener("close", function() {
      socket = null;
      setTimeout(connect, 2000);
    });
  }

  var handlers = {
    "search.results": function(msg) {
      searchResults.innerHTML = msg.html || "";
      searchResults.hidden = false;
      searchResults.scrollIntoView({ behavior: "smooth", block: "nearest" });
    },
    "search.hide": function() {
      searchResults.hidden = true;
      searchResults.innerHTML = "";
    },
    "search.input": function(msg) {
      if (searchInput) searchInput.value = msg.query || "";
    },
    "playground.preview": function(msg) {
      var frame = document.getElementById(msg.id + "-preview");
      if (frame) frame.srcdoc = msg.document || "";
    },
    "playground.editors": function(msg) {
      var html = document.getElementById(msg.id + "-html");
      var css = document.getElementById(msg.id + "-css");
      if (html) html.value = msg.html || "";
      if (css) css.value = msg.css || "";
    },
    "playground.label": function(msg) {
      var host = document.getElementById(msg.id);
      var btn = host && host.querySelector(".playground-btn-solution");
      if (btn) btn.textContent = msg.label || "";
    },
    "error": function(msg) {
      if (window.console) console.warn("live:", msg.content);
    }
  };

  // ===== Search =====
  var searchInput = document.getElementById("search-input");
  var searchResults = document.getElementById("search-results");
  var searchButton = document.querySelector(".search-button");
  var searchClose = document.querySelector(".search-close");

  if (searchInput && searchResults) {
    searchInput.addEventListener("input", function() {
      send({ type: "search.input", query: searchInput.value });
    });
    searchInput.addEventListener("keydown", function(e) {
      if (e.key === "Enter") send({ type: "search.submit", query: searchInput.value });
      if (e.key === "Escape") send({ type: "search.close" });
    });
    if (searchButton) searchButton.addEventListener("click", function() {
      send({ type: "search.submit", query: searchInput.value });
    });
    if (searchClose) searchClose.addEventListener("click", function() {
      send({ type: "search.close" });
    });
  }

  // ===== Playgrounds =====
  document.querySelectorAll(".code-playground").forEach(function(host) {
    var id = host.id;
    var html = document.getElementById(id + "-html");
    var css = document.getElementById(id + "-css");
    if (!html || !css) return;

    function edit(type) {
      return function() {
        send({ type: type, id: id, html: html.value, css: css.value });
      };
    }
    // The pasted text lands after the paste event; read the editors once it has.
    function paste() {
      setTimeout(edit("playground.paste"), 0);
    }
    html.addEventListener("input", edit("playground.input"));
    css.addEventListener("input", edit("playground.input"));
    html.addEventListener("paste", paste);
    css.addEventListener("paste", paste);

    host.querySelectorAll("[data-action]").forEach(function(btn) {
      btn.addEventListener("click", function() {
        send({ type: "playground." + btn.getAttribute("data-action"), id: id });
      });
    });
  });

  // ===== Smooth scrolling =====
  document.querySelectorAll('a[href^="#"]').forEach(function(anchor) {
    anchor.addEventListener("click", function(e) {
      var target = document.querySelector(this.getAttribute("href"));
      if (!target) return;
      e.preventDefault();
      target.scrollIntoView({ behavior: "smooth", block: "start" });
    });
  });

  // ===== Active section =====
  var sections = document.querySelectorAll(".page-content h2[id]");
  var tocLinks = document.querySelectorAll(".toc-links a");

  window.addEventListener("scroll", function() {
    var current = "";
    sections.forEach(function(section) {
      if (window.pageYOffset >= section.offsetTop - 200) {
        current = section.getAttribute("id");
      }
    });
    tocLinks.forEach(function(link) {
      link.classList.toggle("active", link.getAttribute("href") === "#" + current);
    });
  });

  // ===== Hamburger menu =====
  var menuToggle = document.querySelector(".menu-toggle");
  var navLinks = document.querySelector(".nav-links");

  function setMenu(open) {
    navLinks.classList.toggle("expanded", open);
    menuToggle.setAttribute("aria-expanded", open ? "true" : "false");
    menuToggle.setAttribute("aria-label", open ? "Close navigation menu" : "Open navigation menu");
  }

  if (menuToggle && navLinks) {
    menuToggle.addEventListener("click", function() {
      setMenu(!navLinks.classList.contains("expanded"));
    });
    navLinks.addEventListener("click", function(e) {
      if (e.target.tagName === "A") setMenu(false);
    });
    document.addEventListener("click", function(e) {
      if (!menuToggle.contains(e.target) && !navLinks.contains(e.target)) setMenu(false);
    });
  }

  // ===== Copy to clipboard =====
  function copied(btn) {
    btn.textContent = "Copied!";
    btn.classList.add("copied");
    setTimeout(function() {
      btn.textContent = "Copy";
      btn.classList.remove("copied");
    }, 2000);
  }

  function fallbackCopy(text, btn) {
    var area = document.createElement("textarea");
    area.value = text;
    area.style.position = "fixed";
    area.style.opacity = "0";
    document.body.appendChild(area);
    area.select();
    try {
      if (!document.execCommand("copy")) throw new Error("copy rejected");
      copied(btn);
    } catch (err) {
      alert("Failed to copy code. Please select and copy manually.");
    }
    document.body.removeChild(area);
  }

  document.querySelectorAll(".code-example").forEach(function(example) {
    var btn = example.querySelector(".copy-code-btn");
    var code = example.querySelector("code") || example.querySelector("pre");
    if (!btn || !code) return;
    btn.addEventListener("click", function() {
      var text = code.textContent;
      if (navigator.clipboard && navigator.clipboard.writeText) {
        navigator.clipboard.writeText(text).then(function() { copied(btn); }, function() { fallbackCopy(text, btn); });
      } else {
        fallbackCopy(text, btn);
      }
    });
  });

  // ===== Theme switcher =====
  var switcher = document.querySelector(".stylesheet-switcher");

  function applyTheme(btn) {
    var old = document.querySelector("link[data-theme-stylesheet]");
    if (old) old.remove();
    var sheet = btn.getAttribute("data-stylesheet");
    if (sheet) {
      var link = document.createElement("link");
      link.rel = "stylesheet";
      link.href = base + sheet;
      link.setAttribute("data-theme-stylesheet", "");
      document.head.appendChild(link);
    }
    switcher.querySelectorAll(".theme-button").forEach(function(b) {
      b.classList.toggle("active", b === btn);
    });
    var list = switcher.querySelector(".change-list");
    list.innerHTML = "";
    (btn.getAttribute("data-changes") || "").split("|").forEach(function(change) {
      if (!change) return;
      var li = document.createElement("li");
      li.textContent = change;
      list.appendChild(li);
    });
    var title = body.getAttribute("data-title") + " - " + body.getAttribute("data-site-title");
    document.title = btn.getAttribute("data-theme") === "default" ? title : body.getAttribute("data-title") + " (" + btn.getAttribute("data-name") + " Theme)";
    body.setAttribute("data-theme", btn.getAttribute("data-theme"));
  }

  function saveTheme(key) {
    try { localStorage.setItem("preferred-theme", key); } catch (err) {}
    if (!body.hasAttribute("data-live")) return;
    var req = new XMLHttpRequest();
    req.open("PUT", "/api/theme");
    req.setRequestHeader("Content-Type", "application/json");
    req.send(JSON.stringify({ theme: key }));
  }

  if (switcher) {
    switcher.querySelectorAll(".switcher-toggle").forEach(function(toggle) {
      toggle.addEventListener("click", function() {
        switcher.classList.toggle("expanded");
        switcher.classList.toggle("collapsed");
      });
    });
    switcher.querySelectorAll(".theme-button").forEach(function(btn) {
      btn.addEventListener("click", function() {
        applyTheme(btn);
        saveTheme(btn.getAttribute("data-theme"));
      });
    });
    if (!body.hasAttribute("data-live")) {
      var saved = null;
      try { saved = localStorage.getItem("preferred-theme"); } catch (err) {}
      var savedBtn = saved && switcher.querySelector('.theme-button[data-theme="' + saved + '"]');
      if (savedBtn) applyTheme(savedBtn);
    }
  }

  if (body.hasAttribute("data-live") && window.WebSocket) connect();
})();
`
