package email

// Шаблоны писем. %s - токен верификации.
const verificationTemplate = `
<html>
<body>
	<h2>Welcome to jobdesk!</h2>
	<p>Please confirm your email address using the code below:</p>
	<p><b>%s</b></p>
	<p>If you did not create an account, ignore this message.</p>
</body>
</html>
`
