package static

// Страница собирается из трех кусков: форма, затем график, затем логи.
var (
	Part1 = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Диаграмма Вороного</title>
    <style>
        body { margin: 0; background: #1F1F1F; color: #d3d3d3; font-family: Consolas, monospace; overflow: hidden; }
        h1 { color: #d3d3d3; font-size: 1.3em; }
        a { color: #8fbcbb; }
        #container { display: flex; width: 100%; height: 100vh; box-sizing: border-box; }
        #left-container { width: 55%; padding: 10px; box-sizing: border-box; overflow-y: auto; }
        #right-container { width: 45%; padding: 10px; box-sizing: border-box; overflow: auto;
            border-left: 5px solid #757575; background: #1e1e1e; }
        #logs { white-space: pre-wrap; word-wrap: break-word; }
        #diagram-form { display: grid; grid-template-columns: max-content 220px; gap: 6px 12px; align-items: center; }
        input, textarea { background: #2b2b2b; color: #d3d3d3; border: 1px solid #444; padding: 5px; border-radius: 4px; }
        input[type="submit"] { grid-column: 1 / 3; width: 140px; cursor: pointer; }
        input[type="submit"]:hover { background: #444; }
        ::-webkit-scrollbar { width: 8px; }
        ::-webkit-scrollbar-thumb { background: #444; border-radius: 10px; }
        ::-webkit-scrollbar-track { background: #2b2b2b; }
    </style>
</head>
<body>
<div id="container">
    <div id="left-container">
        <h1>Параметры для диаграммы Вороного</h1>
        <form id="diagram-form" method="POST">
            <label for="width">Ширина (W):</label>
            <input type="number" id="width" name="width" value="600" min="10" max="5000">
            <label for="height">Высота (H):</label>
            <input type="number" id="height" name="height" value="600" min="10" max="5000">
            <label for="stations">Станций на сетке (n):</label>
            <input type="number" id="stations" name="stations" value="12" min="0" max="500">
            <label for="random">Случайные (15-30):</label>
            <input type="checkbox" id="random" name="random" value="true">
            <label for="seed">Seed (0 - по времени):</label>
            <input type="number" id="seed" name="seed" value="0">
            <label for="points">Свои станции "x, y":</label>
            <textarea id="points" name="points" rows="5"></textarea>
            <input type="submit" value="Построить">
        </form>
        <p id="export">Экспорт: <a href="/diagram.svg">SVG</a> | <a href="/diagram.png">PNG</a> | <a href="/diagram.geojson">GeoJSON</a></p>
`

	Part2 = `
    </div>
    <div id="right-container">
        <h1>Логи</h1>
        <div id="logs">`

	Part3 = `
        </div>
    </div>
</div>
<script>
    const form = document.getElementById('diagram-form');

    // ссылки на экспорт строят ту же диаграмму, что и форма
    form.addEventListener('input', function () {
        const params = new URLSearchParams(new FormData(form)).toString();
        for (const a of document.querySelectorAll('#export a')) {
            a.href = a.pathname + '?' + params;
        }
    });

    form.addEventListener('submit', function (e) {
        e.preventDefault();
        fetch('/', {
            method: 'POST',
            body: new URLSearchParams(new FormData(form)).toString(),
            headers: { 'Content-Type': 'application/x-www-form-urlencoded' }
        })
        .then(response => response.ok ? response.text() : response.text().then(t => { throw new Error(t); }))
        .then(html => {
            // страница приходит целиком: график и свежие логи
            document.open();
            document.write(html);
            document.close();
        })
        .catch(error => alert('Ошибка: ' + error.message));
    });
</script>
</body>
</html>
`
)
