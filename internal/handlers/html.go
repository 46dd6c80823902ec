package handlers

// Static screening form returned by GET /.
const screeningFormHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Resume Screener</title>
  <style>
    body { font-family: sans-serif; max-width: 720px; margin: 40px auto; }
    textarea { width: 100%; height: 240px; }
    button { margin-top: 12px; padding: 8px 24px; }
  </style>
</head>
<body>
  <h1>Resume Screener</h1>
  <p>Paste a job description and the screener will audit the resume pool against it.</p>
  <form method="POST" action="/screen">
    <textarea name="jd" placeholder="Job description..."></textarea>
    <br>
    <button type="submit">Screen</button>
  </form>
</body>
</html>`
