package render

// documentHead is the page shell up to the slide fragments. Format
// arguments: escaped title, board width, board height.
const documentHead = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            margin: 0;
            padding: 0;
            background-color: #333;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            overflow: hidden;
            font-family: "Microsoft YaHei", sans-serif;
        }
        #container {
            position: relative;
            width: %spx;
            height: %spx;
            background-color: white;
            overflow: hidden;
            box-shadow: 0 0 20px rgba(0,0,0,0.5);
        }
        .slide {
            position: absolute;
            top: 0;
            left: 0;
            width: 100%%;
            height: 100%%;
            display: none;
            background-size: 100%% 100%%;
        }
        .slide.active {
            display: block;
        }
        .element {
            position: absolute;
            transform-origin: 50%% 50%%;
            white-space: pre-wrap;
            display: flex;
            flex-direction: column;
        }
        .element img {
            width: 100%%;
            height: 100%%;
            display: block;
        }
        .element .element {
            position: absolute;
        }
        .missing-resource {
            border: 2px dashed #c00;
            color: #c00;
            font-size: 12px;
            align-items: center;
            justify-content: center;
            text-align: center;
        }
        .nav-buttons {
            position: fixed;
            bottom: 20px;
            left: 50%%;
            transform: translateX(-50%%);
            z-index: 1000;
        }
        .info-button {
            position: fixed;
            top: 20px;
            right: 20px;
            z-index: 1000;
        }
        button {
            padding: 10px 20px;
            font-size: 16px;
            cursor: pointer;
            background: rgba(255, 255, 255, 0.8);
            border: none;
            border-radius: 5px;
            margin: 0 5px;
        }
        button:hover {
            background: white;
        }
        .modal {
            display: none;
            position: fixed;
            z-index: 2000;
            left: 0;
            top: 0;
            width: 100%%;
            height: 100%%;
            overflow: auto;
            background-color: rgba(0,0,0,0.4);
        }
        .modal-content {
            background-color: #fefefe;
            margin: 15%% auto;
            padding: 20px;
            border: 1px solid #888;
            width: 50%%;
            border-radius: 10px;
            box-shadow: 0 4px 8px 0 rgba(0,0,0,0.2);
        }
        .close {
            color: #aaa;
            float: right;
            font-size: 28px;
            font-weight: bold;
        }
        .close:hover,
        .close:focus {
            color: black;
            text-decoration: none;
            cursor: pointer;
        }
        .info-table {
            width: 100%%;
            border-collapse: collapse;
            margin-top: 10px;
        }
        .info-table td, .info-table th {
            border: 1px solid #ddd;
            padding: 8px;
        }
        .info-table tr:nth-child(even){background-color: #f2f2f2;}
        .info-table th {
            padding-top: 12px;
            padding-bottom: 12px;
            text-align: left;
            background-color: #4CAF50;
            color: white;
        }
    </style>
</head>
<body>
    <div id="container">
`

// documentTail closes the canvas and adds navigation plus the info
// modal. Format argument: metadata table rows.
const documentTail = `    </div>
    <div class="nav-buttons">
        <button onclick="prevSlide()">上一页</button>
        <button onclick="nextSlide()">下一页</button>
    </div>

    <div class="info-button">
        <button onclick="showInfo()">关于文档</button>
    </div>

    <div id="infoModal" class="modal">
        <div class="modal-content">
            <span class="close" onclick="closeInfo()">&times;</span>
            <h2>文档信息</h2>
            <table class="info-table">
                %s
            </table>
        </div>
    </div>

    <script>
        let currentSlide = 0;
        const slides = document.querySelectorAll('.slide');
        const modal = document.getElementById("infoModal");

        function showSlide(n) {
            slides[currentSlide].classList.remove('active');
            currentSlide = (n + slides.length) %% slides.length;
            slides[currentSlide].classList.add('active');
        }

        function nextSlide() {
            if (currentSlide < slides.length - 1) {
                showSlide(currentSlide + 1);
            }
        }

        function prevSlide() {
            if (currentSlide > 0) {
                showSlide(currentSlide - 1);
            }
        }

        function showInfo() {
            modal.style.display = "block";
        }

        function closeInfo() {
            modal.style.display = "none";
        }

        window.onclick = function(event) {
            if (event.target == modal) {
                modal.style.display = "none";
            }
        }

        document.addEventListener('keydown', (e) => {
            if (e.key === 'ArrowRight' || e.key === 'ArrowDown' || e.key === ' ') {
                nextSlide();
            } else if (e.key === 'ArrowLeft' || e.key === 'ArrowUp') {
                prevSlide();
            }
        });
    </script>
</body>
</html>
`
